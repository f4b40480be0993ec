// Package objstore wraps an S3-compatible object store. The service only
// ever requests pre-signed write URLs; file bytes go straight from the
// client to the store.
package objstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client signs upload URLs against a MinIO (or any S3-compatible) backend.
type Client struct {
	mc         *minio.Client
	bucket     string
	publicBase string
}

// Config holds the connection settings for the object store.
type Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	PublicBase string // browser-accessible base URL for uploaded objects
	UseSSL     bool
}

// New creates an object store client. No network calls are made here; call
// EnsureBucket during startup to verify connectivity.
func New(cfg Config) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	return &Client{
		mc:         mc,
		bucket:     cfg.Bucket,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
	}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.mc.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}

	if !exists {
		if err := c.mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %q: %w", c.bucket, err)
		}
	}

	return nil
}

// PresignPut returns a time-limited URL authorizing a single PUT of the given
// key. Content type and length are bound into the signature so the store
// itself rejects mismatched uploads.
func (c *Client) PresignPut(
	ctx context.Context, key string, size int64, contentType string, expiry time.Duration,
) (string, error) {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)
	headers.Set("Content-Length", strconv.FormatInt(size, 10))

	signed, err := c.mc.PresignHeader(
		ctx, http.MethodPut, c.bucket, key, expiry, url.Values{}, headers,
	)
	if err != nil {
		return "", fmt.Errorf("presign put %q: %w", key, err)
	}

	return signed.String(), nil
}

// PublicURL returns the browser-accessible download URL for the given key.
func (c *Client) PublicURL(key string) string {
	return c.publicBase + "/" + key
}
