package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ishaanB3006/fitness-tracker/internal/domain"
)

// Recommendation kinds used in cache keys.
const (
	KindWorkouts  = "workouts"
	KindMealPlans = "meal-plans"
	KindPrograms  = "programs"
	KindFeed      = "feed"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func buildKey(userID, kind string, limit int) string {
	return fmt.Sprintf("rec:user:%s:%s:limit:%d", userID, kind, limit)
}

// get returns the raw cached payload and whether the key was present.
func (c *Cache) get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}
	return val, true, nil
}

func (c *Cache) set(ctx context.Context, key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *Cache) GetWorkouts(ctx context.Context, userID string, limit int) ([]domain.Workout, bool, error) {
	raw, found, err := c.get(ctx, buildKey(userID, KindWorkouts, limit))
	if err != nil || !found {
		return nil, false, err
	}
	var items []domain.Workout
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached workouts: %w", err)
	}
	return items, true, nil
}

func (c *Cache) SetWorkouts(ctx context.Context, userID string, limit int, items []domain.Workout) error {
	return c.set(ctx, buildKey(userID, KindWorkouts, limit), items)
}

func (c *Cache) GetMealPlans(ctx context.Context, userID string, limit int) ([]domain.MealPlan, bool, error) {
	raw, found, err := c.get(ctx, buildKey(userID, KindMealPlans, limit))
	if err != nil || !found {
		return nil, false, err
	}
	var items []domain.MealPlan
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached meal plans: %w", err)
	}
	return items, true, nil
}

func (c *Cache) SetMealPlans(ctx context.Context, userID string, limit int, items []domain.MealPlan) error {
	return c.set(ctx, buildKey(userID, KindMealPlans, limit), items)
}

func (c *Cache) GetPrograms(ctx context.Context, userID string, limit int) ([]domain.WorkoutProgram, bool, error) {
	raw, found, err := c.get(ctx, buildKey(userID, KindPrograms, limit))
	if err != nil || !found {
		return nil, false, err
	}
	var items []domain.WorkoutProgram
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached programs: %w", err)
	}
	return items, true, nil
}

func (c *Cache) SetPrograms(ctx context.Context, userID string, limit int, items []domain.WorkoutProgram) error {
	return c.set(ctx, buildKey(userID, KindPrograms, limit), items)
}

func (c *Cache) GetFeed(ctx context.Context, userID string) ([]domain.Recommendation, bool, error) {
	raw, found, err := c.get(ctx, buildKey(userID, KindFeed, 0))
	if err != nil || !found {
		return nil, false, err
	}
	var items []domain.Recommendation
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached feed: %w", err)
	}
	return items, true, nil
}

func (c *Cache) SetFeed(ctx context.Context, userID string, items []domain.Recommendation) error {
	return c.set(ctx, buildKey(userID, KindFeed, 0), items)
}

// ClearUserCache drops every cached recommendation for one user. Used
// when the profile changes.
func (c *Cache) ClearUserCache(ctx context.Context, userID string) error {
	return c.clearPattern(ctx, fmt.Sprintf("rec:user:%s:*", userID))
}

// ClearAll drops every cached recommendation. Used by the week-rollover
// sweep so the new week ranks against fresh state.
func (c *Cache) ClearAll(ctx context.Context) error {
	return c.clearPattern(ctx, "rec:user:*")
}

func (c *Cache) clearPattern(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
