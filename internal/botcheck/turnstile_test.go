package botcheck_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/serroba/dropbin/internal/botcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifier(server *httptest.Server) *botcheck.TurnstileVerifier {
	verifier := botcheck.NewTurnstileVerifier("test-secret")
	verifier.Endpoint = server.URL
	verifier.Client = server.Client()

	return verifier
}

func TestTurnstileVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "test-secret", r.PostForm.Get("secret"))
			assert.Equal(t, "good-token", r.PostForm.Get("response"))

			_, _ = w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		accepted, err := newVerifier(server).Verify(ctx, "good-token")

		require.NoError(t, err)
		assert.True(t, accepted)
	})

	t.Run("rejected token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
		}))
		defer server.Close()

		accepted, err := newVerifier(server).Verify(ctx, "bad-token")

		require.NoError(t, err)
		assert.False(t, accepted)
	})

	t.Run("empty token is rejected without a network call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			_, _ = w.Write([]byte(`{"success": true}`))
		}))
		defer server.Close()

		accepted, err := newVerifier(server).Verify(ctx, "")

		require.NoError(t, err)
		assert.False(t, accepted)
		assert.False(t, called)
	})

	t.Run("malformed response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		_, err := newVerifier(server).Verify(ctx, "token")

		assert.Error(t, err)
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		_, err := newVerifier(server).Verify(ctx, "token")

		assert.Error(t, err)
	})
}
