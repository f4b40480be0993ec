package shortener

import (
	"context"
	"errors"
	"time"
)

// Code represents a short link code.
type Code string

// ShortLink maps a short code to its target URL.
// Links are immutable once created; there is no update or delete path.
type ShortLink struct {
	Code      Code
	Target    string
	CreatedAt time.Time
}

var (
	// ErrNotFound indicates no link is stored under the given code.
	ErrNotFound = errors.New("short link not found")

	// ErrCodeTaken indicates a conditional write lost to an existing mapping.
	ErrCodeTaken = errors.New("short code already taken")
)

// Repository defines the interface for short link storage.
type Repository interface {
	// Save stores the link only if its code is currently unmapped.
	// Returns ErrCodeTaken when the code is already in use.
	Save(ctx context.Context, link *ShortLink) error

	// Get retrieves the link stored under code.
	// Returns ErrNotFound when the code is unknown.
	Get(ctx context.Context, code Code) (*ShortLink, error)
}
