package commands

import (
	"errors"

	"householdplanet/internal/pkg/errs"
	"householdplanet/internal/pkg/guard"
)

var ErrSubmitFeedbackCommandIsNotConstructed = errors.New(
	"SubmitFeedbackCommand must be created via NewSubmitFeedbackCommand constructor",
)

const (
	minFeedbackRating = 1
	maxFeedbackRating = 5
)

// SubmitFeedbackCommand represents a customer rating a completed delivery.
type SubmitFeedbackCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string
	rating         int
	comment        string

	guard guard.ConstructorGuard
}

// NewSubmitFeedbackCommand creates a command to submit delivery feedback.
// Rating must be between 1 and 5; the comment is optional.
func NewSubmitFeedbackCommand(
	trackingNumber string,
	rating int,
	comment string,
) (SubmitFeedbackCommand, error) {
	cmd := SubmitFeedbackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if trackingNumber == "" {
		return SubmitFeedbackCommand{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	cmd.trackingNumber = trackingNumber

	if rating < minFeedbackRating || rating > maxFeedbackRating {
		return SubmitFeedbackCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, minFeedbackRating, maxFeedbackRating,
		)
	}
	cmd.rating = rating

	cmd.comment = comment

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitFeedbackCommand) Validate() error {
	return c.guard.Validate(ErrSubmitFeedbackCommandIsNotConstructed)
}

// TrackingNumber returns the delivery's customer-facing identifier.
func (c SubmitFeedbackCommand) TrackingNumber() string { return c.trackingNumber }

// Rating returns the 1-5 satisfaction score.
func (c SubmitFeedbackCommand) Rating() int { return c.rating }

// Comment returns the optional free-text comment.
func (c SubmitFeedbackCommand) Comment() string { return c.comment }
