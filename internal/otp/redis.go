package otp

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps pending codes in Redis with a TTL, so expiry needs no
// sweeping. Redis reaps expired keys itself, which means an expired code
// surfaces as ErrNotFound rather than ErrExpired.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}

func (s *RedisStore) Issue(ctx context.Context, phone string) (string, error) {
	code := generateCode()
	if err := s.client.Set(ctx, key(phone), code, CodeTTL).Err(); err != nil {
		return "", fmt.Errorf("otp: store code: %w", err)
	}
	return code, nil
}

func (s *RedisStore) Verify(ctx context.Context, phone, code string) error {
	stored, err := s.client.Get(ctx, key(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("otp: load code: %w", err)
	}

	if stored != code {
		return ErrMismatch
	}

	if err := s.client.Del(ctx, key(phone)).Err(); err != nil {
		return fmt.Errorf("otp: consume code: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
