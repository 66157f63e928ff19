package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CardActivityStore provides the grouped per-mode sums the rollup needs.
type CardActivityStore interface {
	SumByMode(ctx context.Context, userID uuid.UUID, txType models.TransactionType, modes []string, start, end time.Time) (map[string]float64, error)
}

type CreditCardService struct {
	store  CardActivityStore
	cards  []string
	logger *zap.Logger
}

// NewCreditCardService takes the allow-list of recognized card names; the
// list, not the data, decides which cards the summary reports.
func NewCreditCardService(store CardActivityStore, cards []string, logger *zap.Logger) *CreditCardService {
	return &CreditCardService{
		store:  store,
		cards:  cards,
		logger: logger,
	}
}

// MonthlySummary reports spend, repayment, and outstanding balance per card
// for one month. Cards without activity still appear with zero values.
func (s *CreditCardService) MonthlySummary(ctx context.Context, userID uuid.UUID, month, year int) (*dto.CreditCardSummaryResponse, error) {
	start, end, err := monthRange(month, year)
	if err != nil {
		return nil, err
	}

	var spent, repaid map[string]float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		spent, err = s.store.SumByMode(gctx, userID, models.TypeExpense, s.cards, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		repaid, err = s.store.SumByMode(gctx, userID, models.TypeCreditCardPayment, s.cards, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("card activity: %w", err)
	}

	resp := &dto.CreditCardSummaryResponse{
		Cards: make([]dto.CardSummary, 0, len(s.cards)),
	}
	for _, card := range s.cards {
		totalSpent := spent[card]
		totalRepaid := repaid[card]
		resp.Cards = append(resp.Cards, dto.CardSummary{
			Card:        card,
			TotalSpent:  totalSpent,
			TotalRepaid: totalRepaid,
			Balance:     totalSpent - totalRepaid,
		})
	}

	return resp, nil
}
