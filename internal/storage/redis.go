package storage

import (
	"context"
	"errors"
	"fmt"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/garrettladley/tint/internal/palette"
)

var _ PaletteStore = (*RedisStore)(nil)

const (
	paletteKeyPrefix = "palette:"
	paletteIndexKey  = "palettes"
)

type RedisConfig struct {
	Client *redis.Client
}

// RedisStore keeps one JSON value per palette and a sorted set of names.
// All index members share a score, so the set orders them lexicographically.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg RedisConfig) *RedisStore {
	return &RedisStore{client: cfg.Client}
}

func (r *RedisStore) Put(ctx context.Context, p palette.Palette) error {
	p, err := prepare(p)
	if err != nil {
		return err
	}

	data, err := go_json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal palette: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, paletteKeyPrefix+p.Name, data, 0)
		pipe.ZAdd(ctx, paletteIndexKey, redis.Z{Score: 0, Member: p.Name})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to put palette: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, name string) (palette.Palette, error) {
	data, err := r.client.Get(ctx, paletteKeyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return palette.Palette{}, ErrNotFound
	}
	if err != nil {
		return palette.Palette{}, fmt.Errorf("failed to get palette: %w", err)
	}

	var p palette.Palette
	if err := go_json.Unmarshal(data, &p); err != nil {
		return palette.Palette{}, fmt.Errorf("failed to unmarshal palette: %w", err)
	}
	return p, nil
}

func (r *RedisStore) List(ctx context.Context) ([]palette.Palette, error) {
	names, err := r.client.ZRange(ctx, paletteIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read palette index: %w", err)
	}
	if len(names) == 0 {
		return nil, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = paletteKeyPrefix + name
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get palettes: %w", err)
	}

	out := make([]palette.Palette, 0, len(values))
	for _, v := range values {
		// index entries can outlive their value if a delete was interrupted
		s, ok := v.(string)
		if !ok {
			continue
		}
		var p palette.Palette
		if err := go_json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal palette: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *RedisStore) Delete(ctx context.Context, name string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, paletteKeyPrefix+name)
		pipe.ZRem(ctx, paletteIndexKey, name)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete palette: %w", err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
