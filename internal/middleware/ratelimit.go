package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/dropbin/internal/ratelimit"
	"go.uber.org/zap"
)

// RateLimiter returns a Huma middleware applying the per-endpoint limits
// attached to operation metadata. Endpoints without a config pass through
// unlimited; the upload core applies its own identity-keyed limit.
func RateLimiter(
	api huma.API, store ratelimit.Store, logger *zap.Logger,
) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cfg := ratelimit.GetEndpointConfig(ctx)
		if cfg == nil || cfg.Disabled || len(cfg.Limits) == 0 {
			next(ctx)

			return
		}

		path := getOperationPath(ctx)
		key := clientKey(ctx)

		for _, limit := range cfg.Limits {
			// Key combines client + route + window for independent tracking.
			// The route template is used, so all requests matching the same
			// pattern share counters per client.
			windowKey := fmt.Sprintf("%s:%s:%d", key, path, limit.Window.Milliseconds())

			count, err := store.Record(ctx.Context(), windowKey, limit.Window)
			if err != nil {
				logger.Error("rate limit check failed", zap.String("path", path), zap.Error(err))
				_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error", err)

				return
			}

			if count > limit.Max {
				logger.Warn("rate limit exceeded",
					zap.String("path", path),
					zap.String("method", ctx.Method()),
					zap.Int64("count", count),
					zap.Int64("max", limit.Max),
					zap.Duration("window", limit.Window),
					zap.String("client_ip", clientIP(ctx)),
				)
				_ = huma.WriteErr(api, ctx, http.StatusTooManyRequests, "rate limit exceeded")

				return
			}
		}

		next(ctx)
	}
}

// getOperationPath extracts the path from the operation, if available.
func getOperationPath(ctx huma.Context) string {
	if op := ctx.Operation(); op != nil {
		return op.Path
	}

	return ""
}

// clientKey generates a unique key for rate limiting based on IP and User-Agent.
func clientKey(ctx huma.Context) string {
	ip := clientIP(ctx)
	ua := ctx.Header("User-Agent")

	hash := sha256.Sum256([]byte(ip + "|" + ua))

	return hex.EncodeToString(hash[:])
}

// clientIP extracts the client IP from the request, considering proxies.
func clientIP(ctx huma.Context) string {
	// X-Forwarded-For may contain multiple IPs; the first is the client.
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	host := ctx.Host()

	ip, _, err := net.SplitHostPort(host)
	if err != nil {
		return host
	}

	return ip
}
