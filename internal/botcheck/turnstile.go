package botcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the Cloudflare Turnstile verification endpoint.
const DefaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Verifier checks whether an opaque client token passes bot verification.
type Verifier interface {
	// Verify returns whether the token is accepted. A rejection is a normal
	// outcome; an error means the verification service itself failed.
	Verify(ctx context.Context, token string) (bool, error)
}

// TurnstileVerifier verifies tokens against the Cloudflare Turnstile
// siteverify endpoint.
type TurnstileVerifier struct {
	// Endpoint may be overridden for tests.
	Endpoint string
	// Client may be replaced; the default carries a 10s timeout.
	Client *http.Client

	secret string
}

// NewTurnstileVerifier creates a Turnstile verifier with the given secret key.
func NewTurnstileVerifier(secret string) *TurnstileVerifier {
	return &TurnstileVerifier{
		Endpoint: DefaultEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
		secret:   secret,
	}
}

type siteverifyResponse struct {
	Success bool `json:"success"`
}

// Verify posts the token to the siteverify endpoint. An empty token is
// rejected without a network call.
func (v *TurnstileVerifier) Verify(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, v.Endpoint, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return false, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("turnstile verify: %w", err)
	}
	defer resp.Body.Close()

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("turnstile verify: decode response: %w", err)
	}

	return result.Success, nil
}
