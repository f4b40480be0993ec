package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/dropbin/internal/files"
)

// PostgresFileStore is a PostgreSQL implementation of files.Store.
type PostgresFileStore struct {
	pool *pgxpool.Pool
}

// NewPostgresFileStore creates a new PostgreSQL-backed file metadata store.
func NewPostgresFileStore(pool *pgxpool.Pool) *PostgresFileStore {
	return &PostgresFileStore{pool: pool}
}

func (p *PostgresFileStore) SaveFile(ctx context.Context, record *files.FileRecord) error {
	query := `
		INSERT INTO files (id, url, content_type, size_bytes, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query,
		record.ID,
		record.URL,
		record.ContentType,
		record.Size,
		record.UserID,
		record.CreatedAt,
	)

	return err
}

func (p *PostgresFileStore) ListByUser(ctx context.Context, userID string) ([]files.FileRecord, error) {
	query := `
		SELECT id, url, content_type, size_bytes, user_id, created_at
		FROM files
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []files.FileRecord

	for rows.Next() {
		var record files.FileRecord

		err := rows.Scan(
			&record.ID,
			&record.URL,
			&record.ContentType,
			&record.Size,
			&record.UserID,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, rows.Err()
}

// Compile-time check.
var _ files.Store = (*PostgresFileStore)(nil)
