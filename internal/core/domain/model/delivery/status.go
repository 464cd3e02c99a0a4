package delivery

import (
	"fmt"

	"householdplanet/internal/pkg/errs"
)

// ErrStatusTransitionNotAllowed rejects a move the workflow table does not
// permit. Wraps errs.ErrValueIsInvalid so generic validation handling still
// applies, while letting callers distinguish workflow conflicts.
var ErrStatusTransitionNotAllowed = fmt.Errorf("%w: status transition is not allowed", errs.ErrValueIsInvalid)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with an explicit transition table so that
// invalid jumps (for example DELIVERED back to PENDING) are rejected before
// anything is persisted.
//
// State transitions:
//
//	PENDING → CONFIRMED → PICKED_UP → IN_TRANSIT → OUT_FOR_DELIVERY → DELIVERED
//
// FAILED and RESCHEDULED are reachable from every in-flight state.
// A FAILED delivery can only be rescheduled; a RESCHEDULED delivery re-enters
// the flow at CONFIRMED. DELIVERED is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at scheduling time.
	Pending

	// Confirmed indicates the delivery has been acknowledged by dispatch.
	Confirmed

	// PickedUp indicates the package has left the warehouse.
	PickedUp

	// InTransit indicates the package is travelling to the destination area.
	InTransit

	// OutForDelivery indicates the package is on the final leg to the customer.
	OutForDelivery

	// Delivered is the successful terminal state.
	Delivered

	// Failed indicates a delivery attempt that did not complete.
	Failed

	// Rescheduled indicates the delivery was moved to a new date or time slot.
	Rescheduled
)

// getStatusStrings returns the wire representation of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Failed:         "FAILED",
		Rescheduled:    "RESCHEDULED",
	}
}

// getAllowedTransitions returns the transition table.
// A status missing from the map (Delivered) is terminal.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Failed, Rescheduled},
		Confirmed:      {PickedUp, Failed, Rescheduled},
		PickedUp:       {InTransit, Failed, Rescheduled},
		InTransit:      {OutForDelivery, Failed, Rescheduled},
		OutForDelivery: {Delivered, Failed, Rescheduled},
		Failed:         {Rescheduled},
		Rescheduled:    {Confirmed, Failed},
	}
}

// StatusFromString parses the wire representation ("PENDING", "IN_TRANSIT", ...)
// into a Status. Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if s < Pending || s > Rescheduled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// CanTransitionTo reports whether the transition table allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move against the transition table.
//
// Returns:
//   - (next, nil) on an allowed transition
//   - (0, error) when next is invalid or the transition is not allowed
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, fmt.Errorf("%w: from %s to %s", ErrStatusTransitionNotAllowed, s.String(), next.String())
	}

	return next, nil
}
