// Package styleredis loads learned-style profiles the Style Learning Service
// publishes to redis.
package styleredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/forPelevin/autocut/internal/types"
)

const keyPrefix = "autocut:style:"

// Adapter implements the StyleStore port over a redis client.
type Adapter struct {
	client *redis.Client
}

// New connects to the redis the Style Learning Service writes to.
func New(ctx context.Context, redisURL string) (*Adapter, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Adapter{client: client}, nil
}

// Load fetches a profile by name. A missing key is (nil, nil): the engine
// degrades to no adjustment.
func (a *Adapter) Load(ctx context.Context, profile string) (*types.LearnedStyle, error) {
	raw, err := a.client.Get(ctx, keyPrefix+profile).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load style profile %q: %w", profile, err)
	}
	var style types.LearnedStyle
	if err := json.Unmarshal([]byte(raw), &style); err != nil {
		return nil, fmt.Errorf("parse style profile %q: %w", profile, err)
	}
	return &style, nil
}

func (a *Adapter) Close() error {
	return a.client.Close()
}
