package videometa

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vidvault/internal/dbx"
	"github.com/dmitrijs2005/vidvault/internal/server/models"
)

// PostgresRepository implements video metadata storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, meta *models.VideoMetadata) error {
	query := `
		INSERT INTO video_metadata (video_key, uploader_id, uploader_name)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query,
		meta.VideoKey, meta.UploaderID, meta.UploaderName); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetAll returns every metadata row. The listing joins these against the
// object-store listing in-process; dangling rows whose object was removed
// out of band are simply never matched.
func (r *PostgresRepository) GetAll(ctx context.Context) ([]*models.VideoMetadata, error) {
	query := `SELECT video_key, uploader_id, uploader_name FROM video_metadata`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.VideoMetadata
	for rows.Next() {
		var item models.VideoMetadata
		if err := rows.Scan(&item.VideoKey, &item.UploaderID, &item.UploaderName); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateKey repoints the row's primary key after a rename. Updating a key
// with no row (video uploaded without uploader identity) affects zero
// rows and is not an error.
func (r *PostgresRepository) UpdateKey(ctx context.Context, oldKey string, newKey string) error {
	query := `UPDATE video_metadata SET video_key = $1 WHERE video_key = $2`

	if _, err := r.db.ExecContext(ctx, query, newKey, oldKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Delete removes the row for key. Absent rows are tolerated so video
// deletion stays idempotent on the metadata side.
func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM video_metadata WHERE video_key = $1`

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
