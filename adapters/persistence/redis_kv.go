package persistence

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/planmoni-site/internal/domain/kvstore"
)

// redisKVStore namespaces every key with prefix so several sites can share
// one Redis database.
type redisKVStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisKVStore(rdb *redis.Client, prefix string) kvstore.Store {
	return &redisKVStore{rdb: rdb, prefix: prefix}
}

func (s *redisKVStore) key(k string) string {
	return s.prefix + k
}

func (s *redisKVStore) Load(ctx context.Context, key string) (kvstore.LoadResult, error) {
	value, err := s.rdb.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return kvstore.Empty(), nil
	}
	if err != nil {
		return kvstore.LoadResult{}, fmt.Errorf("redis get %s: %w", key, err)
	}
	return kvstore.Classify(value), nil
}

func (s *redisKVStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *redisKVStore) Delete(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *redisKVStore) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	iter := s.rdb.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}
