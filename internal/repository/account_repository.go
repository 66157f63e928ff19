package repository

import (
	"context"
	"errors"
	"strings"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var accountColumns = []string{
	"id", "user_id", "name", "month_year",
	"starting_balance", "current_balance", "created_at", "updated_at",
}

type AccountRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAccountRepository(db *pgxpool.Pool, logger *zap.Logger) *AccountRepository {
	return &AccountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AccountRepository) GetByUserMonth(ctx context.Context, userID uuid.UUID, monthYear string) (*models.Account, error) {
	query := squirrel.Select(accountColumns...).
		From("accounts").
		Where(squirrel.Eq{"user_id": userID, "month_year": monthYear}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var acct models.Account
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&acct.ID, &acct.UserID, &acct.Name, &acct.MonthYear,
		&acct.StartingBalance, &acct.CurrentBalance, &acct.CreatedAt, &acct.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}

func (r *AccountRepository) Create(ctx context.Context, acct *models.Account) error {
	query := squirrel.Insert("accounts").
		Columns(accountColumns...).
		Values(acct.ID, acct.UserID, acct.Name, acct.MonthYear,
			acct.StartingBalance, acct.CurrentBalance, acct.CreatedAt, acct.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// Upsert writes both balances for (user, monthYear), creating the row when it
// does not exist yet.
func (r *AccountRepository) Upsert(ctx context.Context, acct *models.Account) error {
	query := squirrel.Insert("accounts").
		Columns(accountColumns...).
		Values(acct.ID, acct.UserID, acct.Name, acct.MonthYear,
			acct.StartingBalance, acct.CurrentBalance, acct.CreatedAt, acct.UpdatedAt).
		Suffix(`ON CONFLICT (user_id, month_year) DO UPDATE SET
			starting_balance = EXCLUDED.starting_balance,
			current_balance = EXCLUDED.current_balance,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// UpdateCurrentBalance sets only the running balance; unlike Upsert it fails
// with ErrNotFound when no row exists for the month.
func (r *AccountRepository) UpdateCurrentBalance(ctx context.Context, userID uuid.UUID, monthYear string, currentBalance float64) (*models.Account, error) {
	query := squirrel.Update("accounts").
		Set("current_balance", currentBalance).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID, "month_year": monthYear}).
		Suffix("RETURNING " + strings.Join(accountColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var acct models.Account
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&acct.ID, &acct.UserID, &acct.Name, &acct.MonthYear,
		&acct.StartingBalance, &acct.CurrentBalance, &acct.CreatedAt, &acct.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &acct, nil
}
