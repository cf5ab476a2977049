package definition

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPrice          = errors.New("Please enter a valid gas price")
	ErrInvalidEfficiency     = errors.New("Invalid efficiency value")
	ErrIncompleteTrip        = errors.New("Please fill in all fields")
	ErrUnknown               = errors.New("An unknown error occurred")
	ErrInvalidTransition     = errors.New("invalid gastimation state transition")
	ErrCalculationInProgress = errors.New("calculation already in progress")
)

const distanceLookupMessage = "Distance calculation failed"

// DistanceLookupError is returned when the provider could not produce a
// driving distance, either because of a non-OK element status or a transport failure.
type DistanceLookupError struct {
	Status string
	Err    error
}

func (e *DistanceLookupError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", distanceLookupMessage, e.Err)
	case e.Status != "":
		return fmt.Sprintf("%s: status %s", distanceLookupMessage, e.Status)
	}
	return distanceLookupMessage
}

func (e *DistanceLookupError) Unwrap() error {
	return e.Err
}

// MessageOf converts a submission error into the message shown on the form.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var lookupErr *DistanceLookupError
	if errors.As(err, &lookupErr) {
		return distanceLookupMessage
	}
	for _, known := range []error{ErrInvalidPrice, ErrInvalidEfficiency, ErrIncompleteTrip} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return ErrUnknown.Error()
}
