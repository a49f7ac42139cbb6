package kvstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis persists payloads in a Redis instance.
type Redis struct {
	Client *redis.Client
}

// Save stores payload under key with the given TTL.
func (r Redis) Save(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if r.Client == nil || key == "" {
		return nil
	}
	return r.Client.Set(ctx, key, payload, ttl).Err()
}

// Load fetches the payload stored under key.
func (r Redis) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if r.Client == nil || key == "" {
		return nil, false, nil
	}
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Ping probes the Redis connection, used by readiness checks.
func (r Redis) Ping(ctx context.Context, timeout time.Duration) error {
	if r.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return r.Client.Ping(ctx).Err()
}
