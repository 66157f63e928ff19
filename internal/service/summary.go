package service

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/pkg/config"
)

// summarizeMonth folds one month of transactions (ascending by date) into the
// dashboard roll-up. Transfer records are not bucketed: they appear in no
// array and no total.
func summarizeMonth(transactions []*models.Transaction, goals config.GoalsConfig) *dto.SummaryResponse {
	resp := &dto.SummaryResponse{
		Income:         []dto.TransactionResponse{},
		Expenses:       []dto.TransactionResponse{},
		Savings:        []dto.TransactionResponse{},
		CCPayments:     []dto.TransactionResponse{},
		ExpensesByType: map[string]float64{},
		ExpensesByNeedsWants: map[string]float64{
			string(models.NeedsWantsNeeds):    0,
			string(models.NeedsWantsWants):    0,
			string(models.NeedsWantsSavings):  0,
			string(models.NeedsWantsInvested): 0,
		},
	}

	for _, tx := range transactions {
		switch tx.Type {
		case models.TypeIncome:
			resp.Income = append(resp.Income, toTransactionResponse(tx))
			resp.TotalIncome += tx.Amount
		case models.TypeExpense:
			resp.Expenses = append(resp.Expenses, toTransactionResponse(tx))
			resp.TotalExpenses += tx.Amount
			if tx.ExpenseType != "" {
				resp.ExpensesByType[tx.ExpenseType] += tx.Amount
			}
			switch tx.NeedsWants {
			case models.NeedsWantsNeeds, models.NeedsWantsWants,
				models.NeedsWantsSavings, models.NeedsWantsInvested:
				resp.ExpensesByNeedsWants[string(tx.NeedsWants)] += tx.Amount
			}
		case models.TypeSaved:
			resp.Savings = append(resp.Savings, toTransactionResponse(tx))
			resp.TotalSavings += tx.Amount
		case models.TypeCreditCardPayment:
			resp.CCPayments = append(resp.CCPayments, toTransactionResponse(tx))
			resp.TotalCCPayments += tx.Amount
		}
	}

	// Saved-type transactions and needsWants=Savings expenses merge into one
	// Savings figure; invested money is counted via needsWants only.
	resp.ExpensesByNeedsWants[string(models.NeedsWantsSavings)] += resp.TotalSavings

	resp.CreditCardPayments = resp.TotalCCPayments
	resp.NetFlow = resp.TotalIncome - resp.TotalExpenses
	resp.GoalProgress = goalProgress(resp.TotalIncome, resp.ExpensesByNeedsWants, goals)

	return resp
}

func goalProgress(totalIncome float64, byNeedsWants map[string]float64, goals config.GoalsConfig) dto.GoalProgressSet {
	return dto.GoalProgressSet{
		Needs: dto.GoalProgress{
			Amount: byNeedsWants[string(models.NeedsWantsNeeds)],
			Target: totalIncome * goals.Needs,
		},
		Wants: dto.GoalProgress{
			Amount: byNeedsWants[string(models.NeedsWantsWants)],
			Target: totalIncome * goals.Wants,
		},
		Savings: dto.GoalProgress{
			Amount: byNeedsWants[string(models.NeedsWantsSavings)],
			Target: totalIncome * goals.Savings,
		},
		Invested: dto.GoalProgress{
			Amount: byNeedsWants[string(models.NeedsWantsInvested)],
			Target: totalIncome * goals.Invested,
		},
	}
}

// buildSearchResponse computes the derived search statistics over the returned
// page, after the limit has been applied. Transactions arrive newest first, so
// the date range reads latest from the head and earliest from the tail.
func buildSearchResponse(transactions []*models.Transaction) *dto.SearchResponse {
	resp := &dto.SearchResponse{
		Transactions:      []dto.TransactionResponse{},
		CategoryBreakdown: map[string]float64{},
		TypeBreakdown:     map[string]float64{},
	}

	for _, tx := range transactions {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(tx))
		resp.TypeBreakdown[string(tx.Type)] += tx.Amount

		switch tx.Type {
		case models.TypeExpense, models.TypeSaved, models.TypeCreditCardPayment:
			resp.TotalExpenses += tx.Amount
		case models.TypeIncome:
			resp.TotalIncome += tx.Amount
		}
		if tx.Type == models.TypeExpense && tx.ExpenseType != "" {
			resp.CategoryBreakdown[tx.ExpenseType] += tx.Amount
		}
	}

	resp.Count = len(transactions)
	resp.NetAmount = resp.TotalIncome - resp.TotalExpenses

	if len(transactions) > 0 {
		resp.DateRange = &dto.DateRange{
			Earliest: transactions[len(transactions)-1].Date.Format(time.RFC3339),
			Latest:   transactions[0].Date.Format(time.RFC3339),
		}
	}

	return resp
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID.String(),
		User:        tx.UserID.String(),
		Amount:      tx.Amount,
		Date:        tx.Date.Format(time.RFC3339),
		Type:        string(tx.Type),
		Mode:        tx.Mode,
		Payee:       tx.Payee,
		ExpenseType: tx.ExpenseType,
		NeedsWants:  string(tx.NeedsWants),
		Remarks:     tx.Remarks,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tx.UpdatedAt.Format(time.RFC3339),
	}
}
