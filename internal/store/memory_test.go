package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/dropbin/internal/files"
	"github.com/serroba/dropbin/internal/shortener"
	"github.com/serroba/dropbin/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLinkStore(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and retrieves a link", func(t *testing.T) {
		s := store.NewMemoryLinkStore()
		link := &shortener.ShortLink{Code: "abc123", Target: "https://example.com", CreatedAt: time.Now()}

		require.NoError(t, s.Save(ctx, link))

		got, err := s.Get(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, link.Target, got.Target)
	})

	t.Run("rejects a second save under the same code", func(t *testing.T) {
		s := store.NewMemoryLinkStore()
		require.NoError(t, s.Save(ctx, &shortener.ShortLink{Code: "abc123", Target: "https://example.com/first"}))

		err := s.Save(ctx, &shortener.ShortLink{Code: "abc123", Target: "https://example.com/second"})

		assert.ErrorIs(t, err, shortener.ErrCodeTaken)

		got, err := s.Get(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/first", got.Target)
	})

	t.Run("unknown code yields ErrNotFound", func(t *testing.T) {
		s := store.NewMemoryLinkStore()

		_, err := s.Get(ctx, "nosuch")

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("mutating the returned link does not affect storage", func(t *testing.T) {
		s := store.NewMemoryLinkStore()
		require.NoError(t, s.Save(ctx, &shortener.ShortLink{Code: "abc123", Target: "https://example.com"}))

		got, err := s.Get(ctx, "abc123")
		require.NoError(t, err)
		got.Target = "https://evil.example"

		again, err := s.Get(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", again.Target)
	})
}

func TestMemoryFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("lists only the requesting user's files", func(t *testing.T) {
		s := store.NewMemoryFileStore()

		require.NoError(t, s.SaveFile(ctx, &files.FileRecord{ID: uuid.New(), URL: "https://cdn.example/a/report.pdf", UserID: "alice"}))
		require.NoError(t, s.SaveFile(ctx, &files.FileRecord{ID: uuid.New(), URL: "https://cdn.example/b/notes.txt", UserID: "bob"}))
		require.NoError(t, s.SaveFile(ctx, &files.FileRecord{ID: uuid.New(), URL: "https://cdn.example/c/photo.png", UserID: "alice"}))

		records, err := s.ListByUser(ctx, "alice")

		require.NoError(t, err)
		require.Len(t, records, 2)

		for _, record := range records {
			assert.Equal(t, "alice", record.UserID)
		}
	})

	t.Run("user without files gets an empty list", func(t *testing.T) {
		s := store.NewMemoryFileStore()

		records, err := s.ListByUser(ctx, "nobody")

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
