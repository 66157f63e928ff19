package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountStore is the persistence surface for monthly balance records.
// *repository.AccountRepository satisfies it.
type AccountStore interface {
	GetByUserMonth(ctx context.Context, userID uuid.UUID, monthYear string) (*models.Account, error)
	Create(ctx context.Context, acct *models.Account) error
	Upsert(ctx context.Context, acct *models.Account) error
	UpdateCurrentBalance(ctx context.Context, userID uuid.UUID, monthYear string, currentBalance float64) (*models.Account, error)
}

type AccountService struct {
	store  AccountStore
	logger *zap.Logger
}

func NewAccountService(store AccountStore, logger *zap.Logger) *AccountService {
	return &AccountService{
		store:  store,
		logger: logger,
	}
}

// GetOrCreate returns the month's account, creating it with zero balances on
// first read.
func (s *AccountService) GetOrCreate(ctx context.Context, userID uuid.UUID, monthYear string) (*dto.AccountResponse, error) {
	if err := validateMonthYear(monthYear); err != nil {
		return nil, err
	}

	acct, err := s.store.GetByUserMonth(ctx, userID, monthYear)
	if errors.Is(err, repository.ErrNotFound) {
		now := time.Now()
		acct = &models.Account{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      models.DefaultAccountName,
			MonthYear: monthYear,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.store.Create(ctx, acct); err != nil {
			return nil, fmt.Errorf("create account: %w", err)
		}
		s.logger.Info("Account created",
			zap.String("user", userID.String()),
			zap.String("monthYear", monthYear),
		)
	} else if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	resp := toAccountResponse(acct)
	return &resp, nil
}

// Put writes both balances, creating the month's row when missing.
func (s *AccountService) Put(ctx context.Context, userID uuid.UUID, monthYear string, req *dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if err := validateMonthYear(monthYear); err != nil {
		return nil, err
	}

	now := time.Now()
	acct := &models.Account{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            models.DefaultAccountName,
		MonthYear:       monthYear,
		StartingBalance: req.StartingBalance,
		CurrentBalance:  req.CurrentBalance,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Upsert(ctx, acct); err != nil {
		return nil, fmt.Errorf("upsert account: %w", err)
	}

	stored, err := s.store.GetByUserMonth(ctx, userID, monthYear)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	resp := toAccountResponse(stored)
	return &resp, nil
}

// PatchCurrentBalance adjusts the running balance only; missing months are an
// error rather than an implicit create.
func (s *AccountService) PatchCurrentBalance(ctx context.Context, userID uuid.UUID, monthYear string, currentBalance float64) (*dto.AccountResponse, error) {
	if err := validateMonthYear(monthYear); err != nil {
		return nil, err
	}

	acct, err := s.store.UpdateCurrentBalance(ctx, userID, monthYear, currentBalance)
	if err != nil {
		return nil, err
	}

	resp := toAccountResponse(acct)
	return &resp, nil
}

func validateMonthYear(monthYear string) error {
	if _, err := time.Parse("2006-01", monthYear); err != nil {
		return validationErrorf("monthYear must use the YYYY-MM format, got %q", monthYear)
	}
	return nil
}

func toAccountResponse(acct *models.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:              acct.ID.String(),
		User:            acct.UserID.String(),
		Name:            acct.Name,
		MonthYear:       acct.MonthYear,
		StartingBalance: acct.StartingBalance,
		CurrentBalance:  acct.CurrentBalance,
		CreatedAt:       acct.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       acct.UpdatedAt.Format(time.RFC3339),
	}
}
