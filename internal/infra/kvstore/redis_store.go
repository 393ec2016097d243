package kvstore

import (
	"context"

	"elegance/config"
	"elegance/internal/errors"

	"github.com/go-redis/redis/v8"
)

// redisStore implements Store over redis, for deployments that want the
// snapshot shared across storefront instances.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping redis")
	}

	return &redisStore{client: client}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read key %q", key)
	}

	return data, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	// Snapshots never expire; the storefront owns its keys for the life of
	// the deployment.
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write key %q", key)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete key %q", key)
	}

	return nil
}

func (s *redisStore) Close() error {
	return errors.WithStack(s.client.Close())
}
