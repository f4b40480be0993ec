package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/dropbin/internal/analytics"
)

// Postgres persists analytics events to PostgreSQL.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL-backed analytics store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) SaveLinkCreated(ctx context.Context, event *analytics.LinkCreatedEvent) error {
	query := `
		INSERT INTO link_created_events (code, target, created_at, client_ip, user_agent)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		event.Code, event.Target, event.CreatedAt, event.ClientIP, event.UserAgent,
	)

	return err
}

func (p *Postgres) SaveLinkAccessed(ctx context.Context, event *analytics.LinkAccessedEvent) error {
	query := `
		INSERT INTO link_accessed_events (code, accessed_at, client_ip, user_agent, referrer)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		event.Code, event.AccessedAt, event.ClientIP, event.UserAgent, event.Referrer,
	)

	return err
}

func (p *Postgres) SaveUploadAuthorized(ctx context.Context, event *analytics.UploadAuthorizedEvent) error {
	query := `
		INSERT INTO upload_authorized_events (storage_key, content_type, size_bytes, subject, saved, authorized_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query,
		event.StorageKey, event.ContentType, event.Size, event.Subject, event.Saved, event.AuthorizedAt,
	)

	return err
}

// Compile-time check.
var _ analytics.Store = (*Postgres)(nil)
