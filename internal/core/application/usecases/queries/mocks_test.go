package queries_test

import (
	"context"
	"errors"
	"log/slog"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/core/ports"
)

// mockAggregateTracker records tracked aggregates when seeding through the
// write-side repositories.
type mockAggregateTracker struct {
	tracked []interface{}
}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, aggregate interface{}) {
	m.tracked = append(m.tracked, aggregate)
}

// memoryTrackingCache is an in-memory ports.TrackingCache for handler tests.
type memoryTrackingCache struct {
	snapshots map[string]*ports.TrackingSnapshot
}

func newMemoryTrackingCache() *memoryTrackingCache {
	return &memoryTrackingCache{snapshots: make(map[string]*ports.TrackingSnapshot)}
}

func (c *memoryTrackingCache) Get(_ context.Context, trackingNumber string) (*ports.TrackingSnapshot, error) {
	return c.snapshots[trackingNumber], nil
}

func (c *memoryTrackingCache) Set(_ context.Context, snapshot *ports.TrackingSnapshot) error {
	c.snapshots[snapshot.TrackingNumber] = snapshot
	return nil
}

func (c *memoryTrackingCache) Invalidate(_ context.Context, trackingNumber string) error {
	delete(c.snapshots, trackingNumber)
	return nil
}

// failingTrackingCache simulates a cache outage on every operation.
type failingTrackingCache struct{}

func (c *failingTrackingCache) Get(_ context.Context, _ string) (*ports.TrackingSnapshot, error) {
	return nil, errors.New("cache is down")
}

func (c *failingTrackingCache) Set(_ context.Context, _ *ports.TrackingSnapshot) error {
	return errors.New("cache is down")
}

func (c *failingTrackingCache) Invalidate(_ context.Context, _ string) error {
	return errors.New("cache is down")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
