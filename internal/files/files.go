package files

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FileRecord is the metadata saved when an authenticated user uploads with
// the save flag set. Records are owned by exactly one user and never mutated.
type FileRecord struct {
	ID          uuid.UUID
	URL         string
	ContentType string
	Size        int64
	UserID      string
	CreatedAt   time.Time
}

// Store defines the interface for file metadata persistence.
type Store interface {
	SaveFile(ctx context.Context, record *FileRecord) error
	ListByUser(ctx context.Context, userID string) ([]FileRecord, error)
}
