package delivery

import (
	"errors"
	"time"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"
)

// ErrStatusHistoryIsNotConstructed is returned when a StatusHistory instance
// was not created through NewStatusHistory or RestoreStatusHistory.
var ErrStatusHistoryIsNotConstructed = errors.New(
	"StatusHistory must be created via NewStatusHistory constructor",
)

// StatusHistory is one append-only audit entry recording a delivery status
// transition. Entries are never updated or deleted; the ascending sequence of
// entries is the delivery's audit trail.
type StatusHistory struct {
	id        kernel.UUID
	status    Status
	notes     string
	timestamp time.Time

	isConstructed bool
}

// NewStatusHistory creates an audit entry for a status transition.
func NewStatusHistory(status Status, notes string, timestamp time.Time) (*StatusHistory, error) {
	return RestoreStatusHistory(kernel.NewUUID(), status, notes, timestamp)
}

// RestoreStatusHistory reconstructs an audit entry from persistence.
func RestoreStatusHistory(id kernel.UUID, status Status, notes string, timestamp time.Time) (*StatusHistory, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &StatusHistory{
		id:            id,
		status:        status,
		notes:         notes,
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was properly constructed.
func (h *StatusHistory) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrStatusHistoryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (h *StatusHistory) ID() kernel.UUID {
	return h.id
}

// Status returns the status recorded by this entry.
func (h *StatusHistory) Status() Status {
	return h.status
}

// Notes returns the free-form notes captured with the transition.
func (h *StatusHistory) Notes() string {
	return h.notes
}

// Timestamp returns when the transition happened.
func (h *StatusHistory) Timestamp() time.Time {
	return h.timestamp
}
