package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/dropbin/internal/ratelimit"
)

// RegisterRoutes registers all routes with per-endpoint rate limit
// configuration. The upload path carries no HTTP-layer limits here; the
// authorizer applies its own identity-keyed limit.
func RegisterRoutes(api huma.API, links *LinkHandler, uploads *UploadHandler, health *HealthHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/link",
		Summary:     "Create short link",
		Description: "Shortens a URL to a random 6-character code.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 30},
					{Window: time.Hour, Max: 300},
				},
			},
		},
	}, links.CreateShortLink)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to target URL",
		Description: "Redirects to the URL stored under the short code, or to the landing page when unknown.",
		Tags:        []string{"Links"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: time.Minute, Max: 1000},
				},
			},
		},
	}, links.RedirectToTarget)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/upload-authorize",
		Summary:     "Authorize a file upload",
		Description: "Issues a pre-signed PUT URL for a pending upload. The client transfers the bytes directly to object storage.",
		Tags:        []string{"Uploads"},
	}, uploads.AuthorizeUpload)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/files",
		Summary:     "List saved files",
		Description: "Lists the authenticated user's saved files.",
		Tags:        []string{"Uploads"},
	}, uploads.ListFiles)

	huma.Register(api, huma.Operation{
		Method:  http.MethodGet,
		Path:    "/health",
		Summary: "Health check",
		Tags:    []string{"Meta"},
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{Disabled: true},
		},
	}, health.Check)
}
