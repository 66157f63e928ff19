package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/api"
	"fintrack/internal/api/handlers"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryStore backs all three services in handler tests.
type memoryStore struct {
	transactions map[uuid.UUID]*models.Transaction
	accounts     map[string]*models.Account
	lastFilter   models.SearchFilter
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		transactions: map[uuid.UUID]*models.Transaction{},
		accounts:     map[string]*models.Account{},
	}
}

func (m *memoryStore) Create(_ context.Context, tx *models.Transaction) error {
	m.transactions[tx.ID] = tx
	return nil
}

func (m *memoryStore) GetByID(_ context.Context, id uuid.UUID) (*models.Transaction, error) {
	tx, ok := m.transactions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return tx, nil
}

func (m *memoryStore) Update(_ context.Context, tx *models.Transaction) error {
	if _, ok := m.transactions[tx.ID]; !ok {
		return repository.ErrNotFound
	}
	m.transactions[tx.ID] = tx
	return nil
}

func (m *memoryStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.transactions[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.transactions, id)
	return nil
}

func (m *memoryStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *memoryStore) ListByMonth(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, tx := range m.transactions {
		if tx.UserID == userID && !tx.Date.Before(start) && !tx.Date.After(end) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (m *memoryStore) Search(_ context.Context, userID uuid.UUID, filter models.SearchFilter) ([]*models.Transaction, error) {
	m.lastFilter = filter
	return m.ListByUser(context.Background(), userID)
}

func (m *memoryStore) SumByMode(_ context.Context, userID uuid.UUID, txType models.TransactionType, modes []string, start, end time.Time) (map[string]float64, error) {
	allowed := map[string]bool{}
	for _, mode := range modes {
		allowed[mode] = true
	}
	totals := map[string]float64{}
	for _, tx := range m.transactions {
		if tx.UserID == userID && tx.Type == txType && allowed[tx.Mode] &&
			!tx.Date.Before(start) && !tx.Date.After(end) {
			totals[tx.Mode] += tx.Amount
		}
	}
	return totals, nil
}

func (m *memoryStore) GetByUserMonth(_ context.Context, userID uuid.UUID, monthYear string) (*models.Account, error) {
	acct, ok := m.accounts[userID.String()+"|"+monthYear]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return acct, nil
}

func (m *memoryStore) CreateAccount(_ context.Context, acct *models.Account) error {
	m.accounts[acct.UserID.String()+"|"+acct.MonthYear] = acct
	return nil
}

func (m *memoryStore) Upsert(_ context.Context, acct *models.Account) error {
	return m.CreateAccount(context.Background(), acct)
}

func (m *memoryStore) UpdateCurrentBalance(_ context.Context, userID uuid.UUID, monthYear string, currentBalance float64) (*models.Account, error) {
	acct, ok := m.accounts[userID.String()+"|"+monthYear]
	if !ok {
		return nil, repository.ErrNotFound
	}
	acct.CurrentBalance = currentBalance
	return acct, nil
}

// accountStoreAdapter renames CreateAccount to the interface's Create without
// colliding with the transaction Create above.
type accountStoreAdapter struct {
	*memoryStore
}

func (a accountStoreAdapter) Create(ctx context.Context, acct *models.Account) error {
	return a.CreateAccount(ctx, acct)
}

var testCards = []string{"Coral GPay CC", "MMT Mastercard"}

func newTestApp(store *memoryStore) *fiber.App {
	logger := zap.NewNop()
	goals := config.GoalsConfig{Needs: 0.40, Wants: 0.20, Savings: 0.10, Invested: 0.30}

	txService := service.NewTransactionService(store, goals, logger)
	acctService := service.NewAccountService(accountStoreAdapter{store}, logger)
	cardService := service.NewCreditCardService(store, testCards, logger)

	return api.SetupRouter(
		handlers.NewTransactionHandler(txService, logger),
		handlers.NewAccountHandler(acctService, logger),
		handlers.NewCreditCardHandler(cardService, logger),
		logger,
	)
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func TestCreateTransaction(t *testing.T) {
	store := newMemoryStore()
	app := newTestApp(store)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		User:   uuid.NewString(),
		Amount: 300,
		Date:   "2025-09-10",
		Type:   "expense",
		Payee:  "Cafe",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.TransactionResponse
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 300.0, created.Amount)
	assert.Len(t, store.transactions, 1)
}

func TestCreateTransactionValidation(t *testing.T) {
	app := newTestApp(newMemoryStore())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/transactions", dto.CreateTransactionRequest{
		User:   uuid.NewString(),
		Amount: 300,
		Type:   "expense",
		// payee missing
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "payee")
}

func TestMonthlySummaryEndpoint(t *testing.T) {
	store := newMemoryStore()
	userID := uuid.New()
	date := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	for _, tx := range []*models.Transaction{
		{ID: uuid.New(), UserID: userID, Amount: 1000, Date: date, Type: models.TypeIncome, Payee: "Employer"},
		{ID: uuid.New(), UserID: userID, Amount: 200, Date: date, Type: models.TypeExpense, Payee: "Shop", ExpenseType: "Food", NeedsWants: models.NeedsWantsNeeds},
	} {
		store.transactions[tx.ID] = tx
	}
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/transactions/summary/"+userID.String()+"?month=9&year=2025", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary dto.SummaryResponse
	decodeBody(t, resp, &summary)
	assert.Equal(t, 1000.0, summary.TotalIncome)
	assert.Equal(t, 200.0, summary.TotalExpenses)
	assert.Equal(t, 800.0, summary.NetFlow)
	assert.Equal(t, 400.0, summary.GoalProgress.Needs.Target)
}

func TestMonthlySummaryRejectsBadMonth(t *testing.T) {
	app := newTestApp(newMemoryStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/transactions/summary/"+uuid.NewString()+"?month=13&year=2025", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSearchEndpointPassesFilter(t *testing.T) {
	store := newMemoryStore()
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/transactions/search/"+uuid.NewString()+"?search=rent&type=expense&limit=5&minAmount=50", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "rent", store.lastFilter.Search)
	assert.Equal(t, "expense", store.lastFilter.Type)
	assert.Equal(t, 5, store.lastFilter.Limit)
	require.NotNil(t, store.lastFilter.MinAmount)
	assert.Equal(t, 50.0, *store.lastFilter.MinAmount)
}

func TestUpdateUnknownTransaction(t *testing.T) {
	app := newTestApp(newMemoryStore())

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/transactions/"+uuid.NewString(), dto.CreateTransactionRequest{
		User:   uuid.NewString(),
		Amount: 10,
		Type:   "expense",
		Payee:  "Shop",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteUnknownTransaction(t *testing.T) {
	app := newTestApp(newMemoryStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/transactions/"+uuid.NewString(), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAccountGetCreatesLazily(t *testing.T) {
	store := newMemoryStore()
	app := newTestApp(store)
	userID := uuid.New()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/accounts/"+userID.String()+"/2025-09", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var acct dto.AccountResponse
	decodeBody(t, resp, &acct)
	assert.Equal(t, "2025-09", acct.MonthYear)
	assert.Zero(t, acct.StartingBalance)
	assert.Len(t, store.accounts, 1)
}

func TestAccountPatchMissingMonth(t *testing.T) {
	app := newTestApp(newMemoryStore())

	resp, err := app.Test(jsonRequest(http.MethodPatch,
		"/api/accounts/"+uuid.NewString()+"/2025-09/balance",
		dto.UpdateBalanceRequest{CurrentBalance: 10}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCreditCardSummaryEndpoint(t *testing.T) {
	store := newMemoryStore()
	userID := uuid.New()
	date := time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
	tx := &models.Transaction{
		ID: uuid.New(), UserID: userID, Amount: 1200, Date: date,
		Type: models.TypeExpense, Mode: "Coral GPay CC", Payee: "Swiggy",
	}
	store.transactions[tx.ID] = tx
	app := newTestApp(store)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/creditcards/summary/"+userID.String()+"?month=9&year=2025", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary dto.CreditCardSummaryResponse
	decodeBody(t, resp, &summary)
	require.Len(t, summary.Cards, len(testCards))
	assert.Equal(t, 1200.0, summary.Cards[0].TotalSpent)
	assert.Equal(t, 1200.0, summary.Cards[0].Balance)
	assert.Zero(t, summary.Cards[1].TotalSpent)
}

func TestInvalidUserIDRejected(t *testing.T) {
	app := newTestApp(newMemoryStore())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/transactions/user/not-a-uuid", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
