// Package storage keeps worker-mode run state in Redis: which channel
// periods have already been drafted, and a short-lived cache of
// illustration URLs so a restart does not refetch the same image.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func draftedKey(channel, period string) string {
	return fmt.Sprintf("articles:drafted:%s:%s", channel, period)
}

func illustrationKey(slug string) string {
	return fmt.Sprintf("articles:illustration:%s", slug)
}

// IsDrafted returns true if an article was already produced for the
// channel in the given period.
func (s *RedisStore) IsDrafted(ctx context.Context, channel, period string) (bool, error) {
	res, err := s.rdb.Get(ctx, draftedKey(channel, period)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return res == "1", nil
}

// MarkDrafted records that the channel's period has been served.
func (s *RedisStore) MarkDrafted(ctx context.Context, channel, period string) error {
	return s.rdb.Set(ctx, draftedKey(channel, period), "1", 30*24*time.Hour).Err()
}

// GetIllustrationURL returns the cached source URL for a slug, or "".
func (s *RedisStore) GetIllustrationURL(ctx context.Context, slug string) (string, error) {
	res, err := s.rdb.Get(ctx, illustrationKey(slug)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return res, nil
}

// SetIllustrationURL caches the source URL used for a slug.
func (s *RedisStore) SetIllustrationURL(ctx context.Context, slug, url string, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, illustrationKey(slug), url, d).Err()
}
