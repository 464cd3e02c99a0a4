package delivery

import (
	"errors"
	"time"

	"householdplanet/internal/core/domain/model/kernel"
	"householdplanet/internal/pkg/errs"
)

// ErrFeedbackIsNotConstructed is returned when a Feedback instance was not
// created through NewFeedback or RestoreFeedback.
var ErrFeedbackIsNotConstructed = errors.New("Feedback must be created via NewFeedback constructor")

const (
	minRating = 1
	maxRating = 5
)

// Feedback captures a customer rating for a completed delivery.
// Repeat submissions are allowed; each one becomes its own entry.
type Feedback struct {
	id          kernel.UUID
	rating      int
	comment     string
	submittedAt time.Time

	isConstructed bool
}

// NewFeedback creates a feedback entry with a rating in [1, 5].
func NewFeedback(rating int, comment string, submittedAt time.Time) (*Feedback, error) {
	return RestoreFeedback(kernel.NewUUID(), rating, comment, submittedAt)
}

// RestoreFeedback reconstructs a feedback entry from persistence.
func RestoreFeedback(id kernel.UUID, rating int, comment string, submittedAt time.Time) (*Feedback, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if rating < minRating || rating > maxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	if submittedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("submittedAt")
	}

	return &Feedback{
		id:            id,
		rating:        rating,
		comment:       comment,
		submittedAt:   submittedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the feedback was properly constructed.
func (f *Feedback) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFeedbackIsNotConstructed
	}
	return nil
}

// ID returns the feedback's unique identifier.
func (f *Feedback) ID() kernel.UUID {
	return f.id
}

// Rating returns the 1-5 customer rating.
func (f *Feedback) Rating() int {
	return f.rating
}

// Comment returns the optional free-form comment.
func (f *Feedback) Comment() string {
	return f.comment
}

// SubmittedAt returns when the feedback was submitted.
func (f *Feedback) SubmittedAt() time.Time {
	return f.submittedAt
}
