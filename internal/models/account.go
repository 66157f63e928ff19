package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultAccountName = "Primary Account"

// Account holds the opening and running balance for one user in one month.
// MonthYear uses the "2006-01" format; (UserID, MonthYear) is unique.
type Account struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Name            string    `db:"name"`
	MonthYear       string    `db:"month_year"`
	StartingBalance float64   `db:"starting_balance"`
	CurrentBalance  float64   `db:"current_balance"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
