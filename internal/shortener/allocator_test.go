package shortener_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/serroba/dropbin/internal/shortener"
	"github.com/serroba/dropbin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepository struct {
	err error
}

func (f *failingRepository) Save(_ context.Context, _ *shortener.ShortLink) error {
	return f.err
}

func (f *failingRepository) Get(_ context.Context, _ shortener.Code) (*shortener.ShortLink, error) {
	return nil, f.err
}

// cyclingGenerator replays a fixed list of codes, wrapping around.
func cyclingGenerator(codes ...string) shortener.CodeGenerator {
	i := 0

	return func() string {
		code := codes[i%len(codes)]
		i++

		return code
	}
}

func newAllocator(t *testing.T, repo shortener.Repository) *shortener.Allocator {
	t.Helper()

	gen, err := shortener.NewCodeGenerator(shortener.CodeLength)
	require.NoError(t, err)

	return shortener.NewAllocator(repo, gen)
}

func TestAllocatorShorten(t *testing.T) {
	ctx := context.Background()

	t.Run("allocates a code and resolves back to the target", func(t *testing.T) {
		alloc := newAllocator(t, store.NewMemoryLinkStore())

		link, err := alloc.Shorten(ctx, "https://example.com/page")

		require.NoError(t, err)
		assert.Len(t, string(link.Code), shortener.CodeLength)
		assert.False(t, link.CreatedAt.IsZero())

		resolved, err := alloc.Resolve(ctx, link.Code)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/page", resolved.Target)
	})

	t.Run("distinct targets get distinct codes", func(t *testing.T) {
		alloc := newAllocator(t, store.NewMemoryLinkStore())

		first, err := alloc.Shorten(ctx, "https://example.com/a")
		require.NoError(t, err)

		second, err := alloc.Shorten(ctx, "https://example.com/b")
		require.NoError(t, err)

		assert.NotEqual(t, first.Code, second.Code)
	})

	t.Run("rejects empty target", func(t *testing.T) {
		alloc := newAllocator(t, store.NewMemoryLinkStore())

		_, err := alloc.Shorten(ctx, "")

		assert.ErrorIs(t, err, shortener.ErrInvalidURL)
	})

	t.Run("rejects relative target", func(t *testing.T) {
		alloc := newAllocator(t, store.NewMemoryLinkStore())

		_, err := alloc.Shorten(ctx, "/just/a/path")

		assert.ErrorIs(t, err, shortener.ErrInvalidURL)
	})

	t.Run("rejects target without host", func(t *testing.T) {
		alloc := newAllocator(t, store.NewMemoryLinkStore())

		_, err := alloc.Shorten(ctx, "mailto:someone@example.com")

		assert.ErrorIs(t, err, shortener.ErrInvalidURL)
	})

	t.Run("rejects target over the length limit", func(t *testing.T) {
		alloc := newAllocator(t, store.NewMemoryLinkStore())
		target := "https://example.com/" + strings.Repeat("x", shortener.MaxTargetLength)

		_, err := alloc.Shorten(ctx, target)

		assert.ErrorIs(t, err, shortener.ErrInvalidURL)
	})

	t.Run("accepts target exactly at the length limit", func(t *testing.T) {
		alloc := newAllocator(t, store.NewMemoryLinkStore())
		target := "https://example.com/" + strings.Repeat("x", shortener.MaxTargetLength-len("https://example.com/"))
		require.Len(t, target, shortener.MaxTargetLength)

		_, err := alloc.Shorten(ctx, target)

		assert.NoError(t, err)
	})

	t.Run("retries past a taken code", func(t *testing.T) {
		repo := store.NewMemoryLinkStore()
		require.NoError(t, repo.Save(ctx, &shortener.ShortLink{Code: "taken1", Target: "https://example.com/old"}))

		alloc := shortener.NewAllocator(repo, cyclingGenerator("taken1", "free22"))

		link, err := alloc.Shorten(ctx, "https://example.com/new")

		require.NoError(t, err)
		assert.Equal(t, shortener.Code("free22"), link.Code)
	})

	t.Run("gives up when every probe collides", func(t *testing.T) {
		repo := store.NewMemoryLinkStore()
		require.NoError(t, repo.Save(ctx, &shortener.ShortLink{Code: "taken1", Target: "https://example.com/old"}))

		alloc := shortener.NewAllocator(repo, cyclingGenerator("taken1"))

		_, err := alloc.Shorten(ctx, "https://example.com/new")

		assert.ErrorIs(t, err, shortener.ErrAllocationExhausted)
	})

	t.Run("propagates non-collision store errors immediately", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		alloc := newAllocator(t, &failingRepository{err: storeErr})

		_, err := alloc.Shorten(ctx, "https://example.com")

		assert.ErrorIs(t, err, storeErr)
	})
}

func TestAllocatorResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code yields ErrNotFound", func(t *testing.T) {
		alloc := newAllocator(t, store.NewMemoryLinkStore())

		_, err := alloc.Resolve(ctx, "nosuch")

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("resolving twice returns the same target", func(t *testing.T) {
		alloc := newAllocator(t, store.NewMemoryLinkStore())

		link, err := alloc.Shorten(ctx, "https://example.com/stable")
		require.NoError(t, err)

		for range 2 {
			resolved, err := alloc.Resolve(ctx, link.Code)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/stable", resolved.Target)
		}
	})
}
