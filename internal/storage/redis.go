package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"qrmenu/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps diner carts in Redis, one slot per restaurant slug
// and browser session, serialized as JSON.
type RedisCartStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{Client: client, TTL: ttl}
}

func (s *RedisCartStore) cartKey(slug, sessionID string) string {
	return "restaurant-cart:" + slug + ":" + sessionID
}

func (s *RedisCartStore) Load(ctx context.Context, slug, sessionID string) ([]domain.CartEntry, error) {
	raw, err := s.Client.Get(ctx, s.cartKey(slug, sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []domain.CartEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *RedisCartStore) Save(ctx context.Context, slug, sessionID string, entries []domain.CartEntry) error {
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.cartKey(slug, sessionID), payload, s.TTL).Err()
}

func (s *RedisCartStore) Clear(ctx context.Context, slug, sessionID string) error {
	return s.Client.Del(ctx, s.cartKey(slug, sessionID)).Err()
}

// RedisCounters tracks daily per-restaurant event counts for the
// aggregation consumer.
type RedisCounters struct {
	Client *redis.Client
}

func NewRedisCounters(client *redis.Client) *RedisCounters {
	return &RedisCounters{Client: client}
}

func (c *RedisCounters) dailyKey(day string, restaurantID int) string {
	return "analytics:daily:" + day + ":" + strconv.Itoa(restaurantID)
}

func (c *RedisCounters) IncrDailyEvent(ctx context.Context, restaurantID int, eventType, day string) error {
	key := c.dailyKey(day, restaurantID)
	if err := c.Client.HIncrBy(ctx, key, eventType, 1).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, 7*24*time.Hour).Err()
}
