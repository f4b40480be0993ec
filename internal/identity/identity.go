package identity

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// AnonymousKey is the rate limit key shared by every unauthenticated caller.
// A single bucket for all anonymous traffic is a deliberate policy choice.
const AnonymousKey = "anonymous"

// Identity is the authenticated subject attached to a request, or the zero
// value for anonymous callers.
type Identity struct {
	Subject string
}

// Anonymous reports whether the identity carries no authenticated subject.
func (i Identity) Anonymous() bool {
	return i.Subject == ""
}

// RateKey returns the rate limiting key for this identity.
func (i Identity) RateKey() string {
	if i.Anonymous() {
		return AnonymousKey
	}

	return i.Subject
}

type identityKey struct{}

// WithIdentity adds an identity to the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext extracts the identity from the context, anonymous if absent.
func FromContext(ctx context.Context) Identity {
	if v, ok := ctx.Value(identityKey{}).(Identity); ok {
		return v
	}

	return Identity{}
}

// Provider resolves a bearer token to an identity.
type Provider interface {
	// Authenticate returns the identity for the token. Any invalid, expired
	// or empty token resolves to the anonymous identity; authentication
	// failures never fail a request, they just strip the subject.
	Authenticate(token string) Identity
}

// JWTProvider validates HS256 bearer tokens and extracts the subject claim.
type JWTProvider struct {
	secret []byte
}

// NewJWTProvider creates a new JWT identity provider.
func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret)}
}

func (p *JWTProvider) Authenticate(token string) Identity {
	if token == "" {
		return Identity{}
	}

	parsed, err := jwt.Parse(token, func(_ *jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return Identity{}
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return Identity{}
	}

	return Identity{Subject: subject}
}
