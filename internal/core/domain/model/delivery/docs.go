// Package delivery provides the delivery-tracking aggregate and its state
// machine. It implements the workflow that takes a scheduled delivery from
// PENDING through to DELIVERED, with FAILED and RESCHEDULED branches.
//
// The package includes:
//   - Delivery: the aggregate root holding the schedule, tracking number,
//     append-only status history and customer feedback
//   - Status: a state machine backed by an explicit transition table
//   - TimeSlot: the coarse MORNING/AFTERNOON/EVENING delivery window
//   - StatusHistory and Feedback: entities owned by the aggregate
//
// Key business rules:
//   - A delivery binds 1:1 to an existing order and starts in PENDING
//   - Every status change appends exactly one history entry with the same
//     status, notes and timestamp
//   - DELIVERED is terminal; FAILED deliveries can only be rescheduled
//   - Rescheduling increments an uncapped counter and re-enters at CONFIRMED
package delivery
