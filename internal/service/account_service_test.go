package service

import (
	"context"
	"testing"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAccountStore struct {
	accounts map[string]*models.Account // keyed by user|monthYear
	created  int
}

func accountKey(userID uuid.UUID, monthYear string) string {
	return userID.String() + "|" + monthYear
}

func (s *stubAccountStore) GetByUserMonth(_ context.Context, userID uuid.UUID, monthYear string) (*models.Account, error) {
	acct, ok := s.accounts[accountKey(userID, monthYear)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return acct, nil
}

func (s *stubAccountStore) Create(_ context.Context, acct *models.Account) error {
	s.created++
	s.accounts[accountKey(acct.UserID, acct.MonthYear)] = acct
	return nil
}

func (s *stubAccountStore) Upsert(_ context.Context, acct *models.Account) error {
	key := accountKey(acct.UserID, acct.MonthYear)
	if existing, ok := s.accounts[key]; ok {
		existing.StartingBalance = acct.StartingBalance
		existing.CurrentBalance = acct.CurrentBalance
		return nil
	}
	s.accounts[key] = acct
	return nil
}

func (s *stubAccountStore) UpdateCurrentBalance(_ context.Context, userID uuid.UUID, monthYear string, currentBalance float64) (*models.Account, error) {
	acct, ok := s.accounts[accountKey(userID, monthYear)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	acct.CurrentBalance = currentBalance
	return acct, nil
}

func newStubAccountStore() *stubAccountStore {
	return &stubAccountStore{accounts: map[string]*models.Account{}}
}

func TestAccountService_GetOrCreateLazily(t *testing.T) {
	store := newStubAccountStore()
	svc := NewAccountService(store, zap.NewNop())
	userID := uuid.New()

	resp, err := svc.GetOrCreate(context.Background(), userID, "2025-09")
	require.NoError(t, err)

	assert.Equal(t, 1, store.created)
	assert.Equal(t, "2025-09", resp.MonthYear)
	assert.Equal(t, models.DefaultAccountName, resp.Name)
	assert.Zero(t, resp.StartingBalance)
	assert.Zero(t, resp.CurrentBalance)

	// Second read returns the same record without another create.
	again, err := svc.GetOrCreate(context.Background(), userID, "2025-09")
	require.NoError(t, err)
	assert.Equal(t, 1, store.created)
	assert.Equal(t, resp.ID, again.ID)
}

func TestAccountService_MonthYearValidation(t *testing.T) {
	svc := NewAccountService(newStubAccountStore(), zap.NewNop())

	for _, monthYear := range []string{"", "2025", "2025-13", "09-2025", "September"} {
		_, err := svc.GetOrCreate(context.Background(), uuid.New(), monthYear)
		var ve *ValidationError
		assert.ErrorAs(t, err, &ve, "monthYear %q", monthYear)
	}
}

func TestAccountService_PutUpserts(t *testing.T) {
	store := newStubAccountStore()
	svc := NewAccountService(store, zap.NewNop())
	userID := uuid.New()

	resp, err := svc.Put(context.Background(), userID, "2025-09", &dto.UpdateAccountRequest{
		StartingBalance: 5000,
		CurrentBalance:  4200,
	})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, resp.StartingBalance)
	assert.Equal(t, 4200.0, resp.CurrentBalance)

	resp, err = svc.Put(context.Background(), userID, "2025-09", &dto.UpdateAccountRequest{
		StartingBalance: 6000,
		CurrentBalance:  6000,
	})
	require.NoError(t, err)
	assert.Equal(t, 6000.0, resp.StartingBalance)
}

func TestAccountService_PatchRequiresExistingMonth(t *testing.T) {
	store := newStubAccountStore()
	svc := NewAccountService(store, zap.NewNop())
	userID := uuid.New()

	_, err := svc.PatchCurrentBalance(context.Background(), userID, "2025-09", 100)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.GetOrCreate(context.Background(), userID, "2025-09")
	require.NoError(t, err)

	resp, err := svc.PatchCurrentBalance(context.Background(), userID, "2025-09", 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.CurrentBalance)
}
