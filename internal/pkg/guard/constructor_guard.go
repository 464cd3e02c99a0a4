// Package guard provides a defensive pattern that ensures value objects and
// entities are only created through their designated constructor functions.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so domain invariants cannot be bypassed by direct struct
// initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation; NewConstructorGuard produces a passing one.
//
// Example:
//
//	type Feedback struct {
//	    rating int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewFeedback(rating int) (Feedback, error) {
//	    if rating < 1 || rating > 5 {
//	        return Feedback{}, errors.New("rating out of range")
//	    }
//	    return Feedback{rating: rating, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (f Feedback) Validate() error {
//	    return f.guard.Validate(ErrFeedbackIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard
// it returns notConstructedErr, or ErrDefaultConstructorGuard when the caller
// passes nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
