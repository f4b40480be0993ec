package middleware

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/dropbin/internal/handlers"
)

// RequestMeta captures client IP, user agent and referrer into the request
// context so handlers can attach them to analytics events without touching
// transport headers themselves.
func RequestMeta(_ huma.API) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		meta := handlers.RequestMeta{
			ClientIP:  clientIP(ctx),
			UserAgent: ctx.Header("User-Agent"),
			Referrer:  ctx.Header("Referer"),
		}

		newCtx := handlers.ContextWithRequestMeta(ctx.Context(), meta)
		ctx = huma.WithContext(ctx, newCtx)

		next(ctx)
	}
}
