package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a row targeted by ID does not exist.
var ErrNotFound = errors.New("not found")

var transactionColumns = []string{
	"id", "user_id", "amount", "date", "type", "mode",
	"payee", "expense_type", "needs_wants", "remarks", "created_at", "updated_at",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		Values(tx.ID, tx.UserID, tx.Amount, tx.Date, tx.Type, tx.Mode,
			tx.Payee, tx.ExpenseType, tx.NeedsWants, tx.Remarks, tx.CreatedAt, tx.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&tx.ID, &tx.UserID, &tx.Amount, &tx.Date, &tx.Type, &tx.Mode,
		&tx.Payee, &tx.ExpenseType, &tx.NeedsWants, &tx.Remarks, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("amount", tx.Amount).
		Set("date", tx.Date).
		Set("type", tx.Type).
		Set("mode", tx.Mode).
		Set("payee", tx.Payee).
		Set("expense_type", tx.ExpenseType).
		Set("needs_wants", tx.NeedsWants).
		Set("remarks", tx.Remarks).
		Set("updated_at", tx.UpdatedAt).
		Where(squirrel.Eq{"id": tx.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("transactions").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

// ListByMonth returns the user's transactions inside [start, end] in ascending
// date order, ready for the monthly aggregation pass.
func (r *TransactionRepository) ListByMonth(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTransactions(ctx, query)
}

// Search runs a single filtered query, newest first, truncated to the filter
// limit.
func (r *TransactionRepository) Search(ctx context.Context, userID uuid.UUID, filter models.SearchFilter) ([]*models.Transaction, error) {
	return r.queryTransactions(ctx, buildSearchQuery(userID, filter))
}

// SumByMode sums amounts per payment mode for one transaction type within
// [start, end], restricted to the given mode names. Modes with no rows are
// absent from the result map.
func (r *TransactionRepository) SumByMode(ctx context.Context, userID uuid.UUID, txType models.TransactionType, modes []string, start, end time.Time) (map[string]float64, error) {
	query := squirrel.Select("mode", "COALESCE(SUM(amount), 0)").
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "type": txType, "mode": modes}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.LtOrEq{"date": end}).
		GroupBy("mode").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var mode string
		var sum float64
		if err := rows.Scan(&mode, &sum); err != nil {
			return nil, err
		}
		totals[mode] = sum
	}

	return totals, rows.Err()
}

func (r *TransactionRepository) queryTransactions(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Amount, &tx.Date, &tx.Type, &tx.Mode,
			&tx.Payee, &tx.ExpenseType, &tx.NeedsWants, &tx.Remarks, &tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}

// buildSearchQuery translates a SearchFilter into one conjunctive query.
// A non-empty free-text search matches payee, remarks, or expense type and
// takes the place of any payee filter.
func buildSearchQuery(userID uuid.UUID, filter models.SearchFilter) squirrel.SelectBuilder {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"payee": pattern},
			squirrel.ILike{"remarks": pattern},
			squirrel.ILike{"expense_type": pattern},
		})
	} else if filter.Payee != "" {
		query = query.Where(squirrel.ILike{"payee": "%" + filter.Payee + "%"})
	}

	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"type": filter.Type})
	}
	if filter.ExpenseType != "" {
		query = query.Where(squirrel.Eq{"expense_type": filter.ExpenseType})
	}
	if filter.NeedsWants != "" {
		query = query.Where(squirrel.Eq{"needs_wants": filter.NeedsWants})
	}
	if filter.Mode != "" {
		query = query.Where(squirrel.ILike{"mode": "%" + filter.Mode + "%"})
	}
	if filter.StartDate != nil {
		query = query.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		// Inclusive through the end of that calendar day.
		end := filter.EndDate
		endOfDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, end.Location())
		query = query.Where(squirrel.LtOrEq{"date": endOfDay})
	}
	if filter.MinAmount != nil {
		query = query.Where(squirrel.GtOrEq{"amount": *filter.MinAmount})
	}
	if filter.MaxAmount != nil {
		query = query.Where(squirrel.LtOrEq{"amount": *filter.MaxAmount})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = models.DefaultSearchLimit
	}

	return query.OrderBy("date DESC").Limit(uint64(limit))
}
