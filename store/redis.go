package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps slots as JSON strings in Redis, namespaced under a key
// prefix. It lets several tills in the same shop share one inventory;
// concurrent writers still race with last-write-wins, which is the accepted
// model for this tool.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// NewRedisStore connects to the Redis URL (redis://host:port/db) and
// verifies the connection.
func NewRedisStore(redisURL, namespace string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("cannot reach redis: %w", err)
	}
	if namespace == "" {
		namespace = "amelia"
	}
	return &RedisStore{client: client, namespace: namespace}, nil
}

// NewRedisStoreWithClient wraps an existing client. Tests use it with
// miniredis.
func NewRedisStoreWithClient(client *redis.Client, namespace string) *RedisStore {
	return &RedisStore{client: client, namespace: namespace}
}

func (s *RedisStore) key(key string) string {
	return s.namespace + ":" + key
}

func (s *RedisStore) Load(key string, v any) error {
	data, err := s.client.Get(context.Background(), s.key(key)).Bytes()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("cannot read slot %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cannot parse slot %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot marshal slot %q: %w", key, err)
	}
	if err := s.client.Set(context.Background(), s.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("cannot write slot %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection.
func (s *RedisStore) Close() error { return s.client.Close() }
