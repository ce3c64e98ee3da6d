package inquiry

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every rejection caused by the request itself.
var ErrInvalidInput = errors.New("invalid booking inquiry")

var (
	ErrInvalidDateRange = &inputError{msg: "start date must be before end date"}
	ErrStartDateInPast  = &inputError{msg: "start date cannot be in the past"}
	ErrVenueNotFound    = &inputError{msg: "venue not found"}
	ErrCapacityExceeded = &inputError{msg: "attendee count exceeds venue capacity"}

	ErrDateConflict = errors.New("date range conflicts with existing booking")
)

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }

// CapacityError reports the capacity of the venue that was exceeded.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("attendee count exceeds venue capacity of %d", e.Capacity)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded || target == ErrInvalidInput
}
