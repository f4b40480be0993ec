package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/dropbin/internal/shortener"
)

// RedisLinkStore is a Redis implementation of shortener.Repository.
// Save uses SETNX so that exactly one writer wins a given code even when two
// allocations race on the same candidate.
type RedisLinkStore struct {
	client *redis.Client
	prefix string // "link:" for code -> target
}

// NewRedisLinkStore creates a new Redis-backed link store.
func NewRedisLinkStore(client *redis.Client) *RedisLinkStore {
	return &RedisLinkStore{
		client: client,
		prefix: "link:",
	}
}

func (r *RedisLinkStore) Save(ctx context.Context, link *shortener.ShortLink) error {
	set, err := r.client.SetNX(ctx, r.prefix+string(link.Code), link.Target, 0).Result()
	if err != nil {
		return err
	}

	if !set {
		return shortener.ErrCodeTaken
	}

	return nil
}

func (r *RedisLinkStore) Get(ctx context.Context, code shortener.Code) (*shortener.ShortLink, error) {
	target, err := r.client.Get(ctx, r.prefix+string(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	return &shortener.ShortLink{
		Code:   code,
		Target: target,
	}, nil
}

// Compile-time check.
var _ shortener.Repository = (*RedisLinkStore)(nil)
