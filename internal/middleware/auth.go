package middleware

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/dropbin/internal/identity"
)

// Authenticate returns a Huma middleware that resolves the bearer token (if
// any) to an identity and stores it in the request context. Requests without
// a valid token proceed as anonymous; endpoints decide whether that matters.
func Authenticate(provider identity.Provider) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := provider.Authenticate(bearerToken(ctx.Header("Authorization")))

		newCtx := identity.WithIdentity(ctx.Context(), id)
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "

	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}

	return ""
}
