package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TypeExpense           TransactionType = "expense"
	TypeIncome            TransactionType = "income"
	TypeTransfer          TransactionType = "transfer"
	TypeCreditCardPayment TransactionType = "credit_card_payment"
	TypeSaved             TransactionType = "saved"
)

// Valid reports whether t is one of the recognized transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeExpense, TypeIncome, TypeTransfer, TypeCreditCardPayment, TypeSaved:
		return true
	}
	return false
}

type NeedsWants string

const (
	NeedsWantsNeeds        NeedsWants = "Needs"
	NeedsWantsWants        NeedsWants = "Wants"
	NeedsWantsSavings      NeedsWants = "Savings"
	NeedsWantsInvested     NeedsWants = "Invested"
	NeedsWantsFundTransfer NeedsWants = "Fund Transfer"
	NeedsWantsNone         NeedsWants = ""
)

// Valid reports whether n is an accepted needs/wants classification.
// The empty value is accepted: the field is only meaningful on expenses.
func (n NeedsWants) Valid() bool {
	switch n {
	case NeedsWantsNeeds, NeedsWantsWants, NeedsWantsSavings,
		NeedsWantsInvested, NeedsWantsFundTransfer, NeedsWantsNone:
		return true
	}
	return false
}

// Transaction is a single money movement owned by one user. ExpenseType and
// NeedsWants are stored for every type but only interpreted for expenses.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Amount      float64         `db:"amount"`
	Date        time.Time       `db:"date"`
	Type        TransactionType `db:"type"`
	Mode        string          `db:"mode"`
	Payee       string          `db:"payee"`
	ExpenseType string          `db:"expense_type"`
	NeedsWants  NeedsWants      `db:"needs_wants"`
	Remarks     string          `db:"remarks"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
