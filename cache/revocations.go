// Package cache holds the Redis-backed session revocation list.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revocations remembers accounts whose issued tokens must be refused.
type Revocations interface {
	Revoke(ctx context.Context, subject string) error
	IsRevoked(ctx context.Context, subject string) (bool, error)
}

// RedisRevocations keeps one key per revoked subject. Keys expire after
// the token lifetime, when every token issued before revocation is dead
// anyway.
type RedisRevocations struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRevocations(addr, username, password string, ttl time.Duration) *RedisRevocations {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	return &RedisRevocations{client: client, ttl: ttl}
}

// NewRedisRevocationsFromClient wraps an existing client.
func NewRedisRevocationsFromClient(client *redis.Client, ttl time.Duration) *RedisRevocations {
	return &RedisRevocations{client: client, ttl: ttl}
}

func revokedKey(subject string) string {
	return "revoked:" + subject
}

func (r *RedisRevocations) Revoke(ctx context.Context, subject string) error {
	return r.client.Set(ctx, revokedKey(subject), time.Now().Unix(), r.ttl).Err()
}

func (r *RedisRevocations) IsRevoked(ctx context.Context, subject string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKey(subject)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisRevocations) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRevocations) Close() error {
	return r.client.Close()
}

// Noop is used when no Redis is configured; nothing is ever revoked.
type Noop struct{}

func (Noop) Revoke(context.Context, string) error { return nil }

func (Noop) IsRevoked(context.Context, string) (bool, error) { return false, nil }
