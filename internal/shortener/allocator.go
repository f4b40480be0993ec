package shortener

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// MaxTargetLength is the longest target URL accepted for shortening.
const MaxTargetLength = 256

// maxAttempts bounds the collision-probe loop so a saturated store surfaces
// as an error instead of spinning forever.
const maxAttempts = 10

var (
	// ErrInvalidURL indicates the target failed validation.
	ErrInvalidURL = errors.New("invalid target url")

	// ErrAllocationExhausted indicates no free code was found within the
	// attempt bound, signaling store saturation or generator degeneracy.
	ErrAllocationExhausted = errors.New("short code allocation exhausted")
)

// Allocator assigns unique short codes to target URLs. Uniqueness is enforced
// by the repository's conditional write: a lost write counts as a collision
// and triggers another probe.
type Allocator struct {
	store        Repository
	generateCode CodeGenerator
}

// NewAllocator creates a collision-checked short code allocator.
func NewAllocator(store Repository, generator CodeGenerator) *Allocator {
	return &Allocator{
		store:        store,
		generateCode: generator,
	}
}

// Shorten validates the target URL and allocates a fresh short code for it.
// Exactly one write reaches the store on success.
func (a *Allocator) Shorten(ctx context.Context, target string) (*ShortLink, error) {
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	for range maxAttempts {
		link := &ShortLink{
			Code:      Code(a.generateCode()),
			Target:    target,
			CreatedAt: time.Now(),
		}

		err := a.store.Save(ctx, link)
		if err == nil {
			return link, nil
		}

		if !errors.Is(err, ErrCodeTaken) {
			return nil, err
		}
	}

	return nil, ErrAllocationExhausted
}

// Resolve returns the link stored under code. An unknown code yields
// ErrNotFound, which callers treat as a normal outcome, not a failure.
func (a *Allocator) Resolve(ctx context.Context, code Code) (*ShortLink, error) {
	return a.store.Get(ctx, code)
}

func validateTarget(target string) error {
	if target == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	if len(target) > MaxTargetLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidURL, MaxTargetLength)
	}

	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: must be absolute", ErrInvalidURL)
	}

	return nil
}
