package service

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionStore is the persistence surface the transaction service needs.
// *repository.TransactionRepository satisfies it.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error)
	ListByMonth(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Transaction, error)
	Search(ctx context.Context, userID uuid.UUID, filter models.SearchFilter) ([]*models.Transaction, error)
}

type TransactionService struct {
	store  TransactionStore
	goals  config.GoalsConfig
	logger *zap.Logger
}

func NewTransactionService(store TransactionStore, goals config.GoalsConfig, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		goals:  goals,
		logger: logger,
	}
}

func (s *TransactionService) Create(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if req.User == "" {
		return nil, validationErrorf("user is required")
	}
	userID, err := uuid.Parse(req.User)
	if err != nil {
		return nil, validationErrorf("invalid user ID %q", req.User)
	}
	if err := validateTransactionFields(req); err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      req.Amount,
		Date:        parseDateOrNow(req.Date, now),
		Type:        models.TransactionType(req.Type),
		Mode:        req.Mode,
		Payee:       req.Payee,
		ExpenseType: req.ExpenseType,
		NeedsWants:  models.NeedsWants(req.NeedsWants),
		Remarks:     req.Remarks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	s.logger.Info("Transaction created",
		zap.String("id", tx.ID.String()),
		zap.String("type", string(tx.Type)),
	)

	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Update replaces every user-editable field of an existing transaction.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := validateTransactionFields(req); err != nil {
		return nil, err
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.Amount = req.Amount
	existing.Date = parseDateOrNow(req.Date, now)
	existing.Type = models.TransactionType(req.Type)
	existing.Mode = req.Mode
	existing.Payee = req.Payee
	existing.ExpenseType = req.ExpenseType
	existing.NeedsWants = models.NeedsWants(req.NeedsWants)
	existing.Remarks = req.Remarks
	existing.UpdatedAt = now

	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}

	resp := toTransactionResponse(existing)
	return &resp, nil
}

func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

func (s *TransactionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.TransactionResponse, error) {
	transactions, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = toTransactionResponse(tx)
	}
	return responses, nil
}

// MonthlySummary recomputes the month's roll-up from scratch on every call;
// nothing derived is persisted.
func (s *TransactionService) MonthlySummary(ctx context.Context, userID uuid.UUID, month, year int) (*dto.SummaryResponse, error) {
	start, end, err := monthRange(month, year)
	if err != nil {
		return nil, err
	}

	transactions, err := s.store.ListByMonth(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("load month transactions: %w", err)
	}

	return summarizeMonth(transactions, s.goals), nil
}

func (s *TransactionService) Search(ctx context.Context, userID uuid.UUID, filter models.SearchFilter) (*dto.SearchResponse, error) {
	transactions, err := s.store.Search(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("search transactions: %w", err)
	}

	return buildSearchResponse(transactions), nil
}

func validateTransactionFields(req *dto.CreateTransactionRequest) error {
	if req.Amount <= 0 {
		return validationErrorf("amount must be greater than zero")
	}
	if req.Payee == "" {
		return validationErrorf("payee is required")
	}
	txType := models.TransactionType(req.Type)
	if req.Type == "" || !txType.Valid() {
		return validationErrorf("invalid transaction type %q", req.Type)
	}
	if !models.NeedsWants(req.NeedsWants).Valid() {
		return validationErrorf("invalid needsWants value %q", req.NeedsWants)
	}
	return nil
}

// parseDateOrNow accepts RFC3339 or plain calendar dates; anything else,
// including an empty value, resolves to the submission time.
func parseDateOrNow(value string, now time.Time) time.Time {
	if value == "" {
		return now
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	return now
}
