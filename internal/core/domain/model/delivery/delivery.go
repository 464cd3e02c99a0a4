package delivery

import (
	"errors"
	"fmt"
	"time"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrHistoryIsEmpty is returned when restoring a delivery without any
	// status history. Every delivery writes its first entry at scheduling
	// time, so an empty trail means corrupted data.
	ErrHistoryIsEmpty = errors.New("delivery must have at least one status history entry")
)

// Delivery is the aggregate root for the tracking workflow of one order.
// It is created at scheduling time in PENDING status, mutated exclusively
// through validated status transitions, and keeps its append-only status
// history and customer feedback inside the aggregate boundary.
//
// Invariants:
//   - Bound 1:1 to an existing order
//   - Status changes follow the Status transition table
//   - Every transition appends exactly one history entry carrying the same
//     status, notes and timestamp
//   - History is never empty once the delivery exists
type Delivery struct {
	id                  kernel.UUID
	orderID             kernel.UUID
	status              Status
	scheduledDate       time.Time
	timeSlot            TimeSlot
	trackingNumber      string
	specialInstructions string
	photoProof          string
	failureReason       string
	rescheduleCount     int
	history             []*StatusHistory
	feedback            []*Feedback

	isConstructed bool
}

// NewTrackingNumber generates a customer-facing tracking number of the form
// DL-<millisecond timestamp><random suffix>. The suffix keeps concurrent
// schedules in the same millisecond from colliding.
func NewTrackingNumber(now time.Time) string {
	raw := uuid.New()
	return fmt.Sprintf("DL-%d%02X%02X", now.UnixMilli(), raw[0], raw[1])
}

// NewDelivery schedules a new delivery for an order.
// The delivery starts in PENDING status with its first history entry already
// recorded at the scheduling timestamp.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	trackingNumber string,
	scheduledDate time.Time,
	timeSlot TimeSlot,
	specialInstructions string,
	now time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:              Pending,
		specialInstructions: specialInstructions,
		isConstructed:       true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setTrackingNumber(trackingNumber),
		d.setSchedule(scheduledDate, timeSlot),
	); err != nil {
		return nil, err
	}

	entry, err := NewStatusHistory(Pending, "Delivery scheduled", now)
	if err != nil {
		return nil, err
	}
	d.history = append(d.history, entry)

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence with its full
// status history and feedback. History must be non-empty and is expected in
// ascending timestamp order.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	trackingNumber string,
	scheduledDate time.Time,
	timeSlot TimeSlot,
	specialInstructions string,
	photoProof string,
	failureReason string,
	rescheduleCount int,
	history []*StatusHistory,
	feedback []*Feedback,
) (*Delivery, error) {
	d := &Delivery{
		specialInstructions: specialInstructions,
		photoProof:          photoProof,
		failureReason:       failureReason,
		isConstructed:       true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setTrackingNumber(trackingNumber),
		d.setSchedule(scheduledDate, timeSlot),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, ErrHistoryIsEmpty
	}
	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}
	for _, f := range feedback {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	if rescheduleCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rescheduleCount", fmt.Errorf("%d is negative", rescheduleCount))
	}

	d.status = status
	d.rescheduleCount = rescheduleCount
	d.history = history
	d.feedback = feedback
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being delivered.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Status returns the current workflow status.
func (d *Delivery) Status() Status {
	return d.status
}

// ScheduledDate returns the agreed delivery date.
func (d *Delivery) ScheduledDate() time.Time {
	return d.scheduledDate
}

// TimeSlot returns the chosen delivery window.
func (d *Delivery) TimeSlot() TimeSlot {
	return d.timeSlot
}

// TrackingNumber returns the customer-facing tracking identifier.
func (d *Delivery) TrackingNumber() string {
	return d.trackingNumber
}

// SpecialInstructions returns the optional handling notes from the customer.
func (d *Delivery) SpecialInstructions() string {
	return d.specialInstructions
}

// PhotoProof returns the proof-of-delivery reference, set on DELIVERED.
func (d *Delivery) PhotoProof() string {
	return d.photoProof
}

// FailureReason returns why the last attempt failed, set on FAILED.
func (d *Delivery) FailureReason() string {
	return d.failureReason
}

// RescheduleCount returns how many times the delivery has been rescheduled.
func (d *Delivery) RescheduleCount() int {
	return d.rescheduleCount
}

// History returns the append-only status trail in ascending timestamp order.
func (d *Delivery) History() []*StatusHistory {
	return d.history
}

// Feedback returns all customer feedback entries for this delivery.
func (d *Delivery) Feedback() []*Feedback {
	return d.feedback
}

// ChangeStatus transitions the delivery to next and appends the matching
// history entry. The transition is validated against the status table; the
// history entry carries exactly the status, notes and timestamp that were
// persisted on the delivery row.
func (d *Delivery) ChangeStatus(next Status, notes string, at time.Time) error {
	newStatus, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}

	entry, err := NewStatusHistory(newStatus, notes, at)
	if err != nil {
		return err
	}

	d.status = newStatus
	d.history = append(d.history, entry)
	return nil
}

// MarkDelivered completes the delivery, recording optional photo proof.
func (d *Delivery) MarkDelivered(photoProof string, notes string, at time.Time) error {
	if err := d.ChangeStatus(Delivered, notes, at); err != nil {
		return err
	}
	d.photoProof = photoProof
	return nil
}

// MarkFailed records a failed attempt with its reason.
func (d *Delivery) MarkFailed(reason string, notes string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("failureReason")
	}
	if err := d.ChangeStatus(Failed, notes, at); err != nil {
		return err
	}
	d.failureReason = reason
	return nil
}

// Reschedule moves the delivery to a new date and time slot.
// Allowed from any state the transition table permits, including FAILED.
// There is no cap on how many times a delivery can be rescheduled.
func (d *Delivery) Reschedule(newDate time.Time, slot TimeSlot, notes string, at time.Time) error {
	if err := errors.Join(slot.Validate(), validateScheduledDate(newDate)); err != nil {
		return err
	}

	if err := d.ChangeStatus(Rescheduled, notes, at); err != nil {
		return err
	}

	d.scheduledDate = newDate
	d.timeSlot = slot
	d.rescheduleCount++
	return nil
}

// AddFeedback records a customer rating. Repeat submissions append further
// entries; there is no single-submission constraint.
func (d *Delivery) AddFeedback(rating int, comment string, at time.Time) (*Feedback, error) {
	f, err := NewFeedback(rating, comment, at)
	if err != nil {
		return nil, err
	}
	d.feedback = append(d.feedback, f)
	return f, nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	d.trackingNumber = trackingNumber
	return nil
}

func (d *Delivery) setSchedule(date time.Time, slot TimeSlot) error {
	if err := errors.Join(validateScheduledDate(date), slot.Validate()); err != nil {
		return err
	}
	d.scheduledDate = date
	d.timeSlot = slot
	return nil
}

func validateScheduledDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}
	return nil
}
