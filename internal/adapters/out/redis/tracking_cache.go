// Package redis implements the tracking cache on Redis.
// Snapshots are stored as JSON under "tracking:<number>" with a 24 hour TTL
// and invalidated by the status workflow on every write.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"householdplanet/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

const trackingKeyPrefix = "tracking:"

// snapshotTTL bounds staleness for entries the workflow failed to invalidate.
const snapshotTTL = 24 * time.Hour

// TrackingCache is a Redis-backed implementation of ports.TrackingCache.
type TrackingCache struct {
	client *redis.Client
}

// NewTrackingCache connects to Redis and verifies the connection.
func NewTrackingCache(addr string, password string, db int) (*TrackingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &TrackingCache{client: client}, nil
}

// Close releases the underlying Redis connection.
func (c *TrackingCache) Close() error {
	return c.client.Close()
}

// Get returns the cached snapshot for a tracking number, or (nil, nil) on a
// cache miss.
func (c *TrackingCache) Get(ctx context.Context, trackingNumber string) (*ports.TrackingSnapshot, error) {
	data, err := c.client.Get(ctx, trackingKeyPrefix+trackingNumber).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot ports.TrackingSnapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// Set stores a snapshot under its tracking number.
func (c *TrackingCache) Set(ctx context.Context, snapshot *ports.TrackingSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, trackingKeyPrefix+snapshot.TrackingNumber, data, snapshotTTL).Err()
}

// Invalidate drops the cached snapshot for a tracking number.
// Deleting a key that does not exist is not an error.
func (c *TrackingCache) Invalidate(ctx context.Context, trackingNumber string) error {
	return c.client.Del(ctx, trackingKeyPrefix+trackingNumber).Err()
}
