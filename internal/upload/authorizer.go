package upload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/dropbin/internal/botcheck"
	"github.com/serroba/dropbin/internal/files"
	"github.com/serroba/dropbin/internal/identity"
	"github.com/serroba/dropbin/internal/ratelimit"
	"go.uber.org/zap"
)

// DefaultMaxSize is the upload size ceiling in bytes when none is configured.
const DefaultMaxSize = 250_000_000

// GrantTTL is how long an issued upload URL stays valid.
const GrantTTL = 900 * time.Second

// keyPrefixLength is the length of the random storage key prefix. The prefix
// only exists to keep unrelated uploads sharing a filename apart; it is not
// checked against existing keys.
const keyPrefixLength = 8

var (
	// ErrAuthRequired indicates a save was requested without an account.
	ErrAuthRequired = errors.New("saving a file requires an account")

	// ErrBotCheckFailed indicates the bot verification token was rejected.
	ErrBotCheckFailed = errors.New("bot verification failed")

	// ErrRateLimited indicates the identity exceeded its upload allowance.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrFileTooLarge indicates the declared size exceeds the ceiling.
	ErrFileTooLarge = errors.New("file is over the size limit")
)

// Signer issues pre-signed write URLs against the object store.
type Signer interface {
	PresignPut(ctx context.Context, key string, size int64, contentType string, expiry time.Duration) (string, error)
	PublicURL(key string) string
}

// Request describes a pending client upload.
type Request struct {
	Name        string
	ContentType string
	Size        int64
	Save        bool
	BotToken    string
}

// Grant is a stateless upload authorization. Possession of URL is the
// authorization to write exactly one object for at most GrantTTL.
type Grant struct {
	URL string
	Key string
}

// Authorizer issues upload grants. It never touches file bytes; the client
// PUTs directly against the signed URL.
type Authorizer struct {
	verifier  botcheck.Verifier
	limiter   ratelimit.Limiter
	signer    Signer
	fileStore files.Store
	newPrefix func() string
	maxSize   int64
	logger    *zap.Logger
}

// NewAuthorizer creates an upload authorizer. maxSize falls back to
// DefaultMaxSize when non-positive.
func NewAuthorizer(
	verifier botcheck.Verifier,
	limiter ratelimit.Limiter,
	signer Signer,
	fileStore files.Store,
	newPrefix func() string,
	maxSize int64,
	logger *zap.Logger,
) *Authorizer {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	return &Authorizer{
		verifier:  verifier,
		limiter:   limiter,
		signer:    signer,
		fileStore: fileStore,
		newPrefix: newPrefix,
		maxSize:   maxSize,
		logger:    logger,
	}
}

// Authorize runs the full authorization flow for a pending upload. All
// rejection checks run before any external side effect, so a denied request
// costs nothing beyond the verification call.
func (a *Authorizer) Authorize(ctx context.Context, req Request, id identity.Identity) (*Grant, error) {
	if req.Save && id.Anonymous() {
		return nil, ErrAuthRequired
	}

	accepted, err := a.verifier.Verify(ctx, req.BotToken)
	if err != nil {
		return nil, fmt.Errorf("verify bot token: %w", err)
	}

	if !accepted {
		return nil, ErrBotCheckFailed
	}

	allowed, err := a.limiter.Allow(ctx, id.RateKey())
	if err != nil {
		return nil, fmt.Errorf("check rate limit: %w", err)
	}

	if !allowed {
		return nil, ErrRateLimited
	}

	if req.Size > a.maxSize {
		return nil, ErrFileTooLarge
	}

	key := a.newPrefix() + "/" + req.Name

	signedURL, err := a.signer.PresignPut(ctx, key, req.Size, req.ContentType, GrantTTL)
	if err != nil {
		return nil, fmt.Errorf("sign upload url: %w", err)
	}

	if req.Save {
		// A save failure is not rolled back against the already-issued
		// grant: the signed URL is returned regardless.
		record := &files.FileRecord{
			ID:          uuid.New(),
			URL:         a.signer.PublicURL(key),
			ContentType: req.ContentType,
			Size:        req.Size,
			UserID:      id.Subject,
			CreatedAt:   time.Now(),
		}

		if err := a.fileStore.SaveFile(ctx, record); err != nil {
			a.logger.Error("failed to save file record",
				zap.String("key", key),
				zap.String("user", id.Subject),
				zap.Error(err),
			)
		}
	}

	return &Grant{URL: signedURL, Key: key}, nil
}
