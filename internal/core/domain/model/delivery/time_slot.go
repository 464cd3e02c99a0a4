package delivery

import (
	"fmt"

	"householdplanet/internal/pkg/errs"
)

// TimeSlot is the coarse delivery window chosen at scheduling time.
type TimeSlot int

const (
	// UnknownSlot represents an invalid or undefined time slot.
	UnknownSlot TimeSlot = iota

	// Morning covers deliveries before noon.
	Morning

	// Afternoon covers deliveries between noon and early evening.
	Afternoon

	// Evening covers deliveries after working hours.
	Evening
)

func getTimeSlotStrings() map[TimeSlot]string {
	return map[TimeSlot]string{
		UnknownSlot: "UNKNOWN",
		Morning:     "MORNING",
		Afternoon:   "AFTERNOON",
		Evening:     "EVENING",
	}
}

// TimeSlotFromString parses the wire representation into a TimeSlot.
func TimeSlotFromString(s string) (TimeSlot, error) {
	for slot, str := range getTimeSlotStrings() {
		if str == s && slot != UnknownSlot {
			return slot, nil
		}
	}
	return UnknownSlot, errs.NewValueIsInvalidErrorWithCause("timeSlot", fmt.Errorf("%q is not a delivery window", s))
}

// Validate checks that the slot is one of the supported windows.
func (t TimeSlot) Validate() error {
	if t < Morning || t > Evening {
		return errs.NewValueIsInvalidErrorWithCause("timeSlot", fmt.Errorf("%d is not a valid time slot", t))
	}
	return nil
}

// String returns the wire representation of the slot.
func (t TimeSlot) String() string {
	if str, ok := getTimeSlotStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
