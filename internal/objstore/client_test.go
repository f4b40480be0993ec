package objstore_test

import (
	"testing"

	"github.com/serroba/dropbin/internal/objstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates a client without dialing", func(t *testing.T) {
		client, err := objstore.New(objstore.Config{
			Endpoint:   "localhost:9000",
			AccessKey:  "minioadmin",
			SecretKey:  "minioadmin",
			Bucket:     "uploads",
			PublicBase: "https://files.example.com",
		})

		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("rejects a malformed endpoint", func(t *testing.T) {
		_, err := objstore.New(objstore.Config{Endpoint: "not a%%valid host"})

		assert.Error(t, err)
	})
}

func TestPublicURL(t *testing.T) {
	t.Run("joins the base and key", func(t *testing.T) {
		client, err := objstore.New(objstore.Config{
			Endpoint:   "localhost:9000",
			Bucket:     "uploads",
			PublicBase: "https://files.example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, "https://files.example.com/Ab3dQ9xZ/photo.jpg", client.PublicURL("Ab3dQ9xZ/photo.jpg"))
	})

	t.Run("trailing slash on the base is ignored", func(t *testing.T) {
		client, err := objstore.New(objstore.Config{
			Endpoint:   "localhost:9000",
			Bucket:     "uploads",
			PublicBase: "https://files.example.com/",
		})
		require.NoError(t, err)

		assert.Equal(t, "https://files.example.com/a/b.txt", client.PublicURL("a/b.txt"))
	})
}
