package uploadhistory

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vidvault/internal/dbx"
	"github.com/dmitrijs2005/vidvault/internal/server/models"
)

// PostgresRepository implements the append-only upload ledger over a
// dbx.DBTX (*sql.DB or *sql.Tx). Rows are never updated or deleted.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, entry *models.UploadHistoryEntry) error {
	query := `
		INSERT INTO upload_history (size)
		VALUES ($1)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, entry.Size).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SumBetween returns total uploaded bytes in the half-open window
// [from, to). Callers pass UTC month boundaries.
func (r *PostgresRepository) SumBetween(ctx context.Context, from time.Time, to time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(size), 0) FROM upload_history
		WHERE created_at >= $1 AND created_at < $2
	`
	var total int64
	err := r.db.QueryRowContext(ctx, query, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

// MonthlyTotals groups ledger entries by UTC calendar month and returns
// the most recent months first.
func (r *PostgresRepository) MonthlyTotals(ctx context.Context, months int) ([]*models.MonthUsage, error) {
	query := `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month, SUM(size) AS total
		FROM upload_history
		GROUP BY month
		ORDER BY month DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.MonthUsage
	for rows.Next() {
		var item models.MonthUsage
		if err := rows.Scan(&item.Month, &item.Total); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
