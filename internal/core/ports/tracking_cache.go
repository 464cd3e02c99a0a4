package ports

import (
	"context"
	"time"
)

// TrackingSnapshot is the cached read model for a tracking lookup.
// It mirrors the tracking query response so cache hits skip the database
// entirely.
type TrackingSnapshot struct {
	TrackingNumber    string                 `json:"trackingNumber"`
	Status            string                 `json:"status"`
	ScheduledDate     time.Time              `json:"scheduledDate"`
	TimeSlot          string                 `json:"timeSlot"`
	EstimatedDelivery time.Time              `json:"estimatedDelivery"`
	LocationName      string                 `json:"locationName"`
	CustomerName      string                 `json:"customerName"`
	RescheduleCount   int                    `json:"rescheduleCount"`
	FailureReason     string                 `json:"failureReason,omitempty"`
	PhotoProof        string                 `json:"photoProof,omitempty"`
	History           []TrackingHistoryEntry `json:"history"`
}

// TrackingHistoryEntry is one audit-trail row in the cached read model.
type TrackingHistoryEntry struct {
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackingCache caches tracking lookups by tracking number.
// A miss returns (nil, nil); cache failures must not fail the read path.
type TrackingCache interface {
	Get(ctx context.Context, trackingNumber string) (*TrackingSnapshot, error)
	Set(ctx context.Context, snapshot *TrackingSnapshot) error
	Invalidate(ctx context.Context, trackingNumber string) error
}
