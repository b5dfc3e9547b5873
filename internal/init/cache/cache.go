package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"league/config"

	"github.com/go-redis/redis/v8"
)

const generationKey = "league:generation"

// Cache оборачивает клиент redis. Списки хранятся под ключами с поколением,
// любая запись увеличивает поколение, и старые ключи просто истекают по TTL.
type Cache struct {
	Client  *redis.Client
	ListTTL time.Duration
}

// NewCache возвращает nil, nil если адрес не задан: кэш отключен.
func NewCache(cfg config.CacheConfig) (*Cache, error) {
	if cfg.Address == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		DB:       cfg.Db,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	ttl := cfg.ListCacheTtl
	if ttl == 0 {
		ttl = 5 * time.Minute
	}

	return &Cache{Client: client, ListTTL: ttl}, nil
}

func (c *Cache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.Client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *Cache) Bump(ctx context.Context) error {
	return c.Client.Incr(ctx, generationKey).Err()
}

// NoGeneration возвращается из GetJSON, когда поколение прочитать не удалось.
// SetJSON с ним ничего не сохраняет.
const NoGeneration int64 = -1

// Key строит ключ поколения gen, например league:g3:players:all.
func Key(gen int64, name string) string {
	return fmt.Sprintf("league:g%d:%s", gen, name)
}

// GetJSON читает значение текущего поколения и возвращает это поколение.
// Загруженное после промаха значение сохраняется через SetJSON под ним же.
func (c *Cache) GetJSON(ctx context.Context, name string, dst interface{}) (int64, bool, error) {
	gen, err := c.Generation(ctx)
	if err != nil {
		return NoGeneration, false, err
	}
	key := Key(gen, name)
	val, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return gen, false, nil
	}
	if err != nil {
		return gen, false, err
	}
	if err := json.Unmarshal(val, dst); err != nil {
		_ = c.Client.Del(ctx, key)
		return gen, false, err
	}
	return gen, true, nil
}

func (c *Cache) SetJSON(ctx context.Context, gen int64, name string, v interface{}) error {
	if gen < 0 {
		return nil
	}
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, Key(gen, name), val, c.ListTTL).Err()
}

func (c *Cache) Close() error {
	return c.Client.Close()
}
