package domain

import (
	"encoding/json"
	"errors"
)

// User-facing validation messages.
const (
	MsgInvalidWorkoutType = "Invalid workout type"
	MsgInvalidDuration    = "Duration must be between 1 and 180 minutes"
	MsgInvalidIntensity   = "Invalid intensity level"
)

// Duration bounds in minutes, inclusive.
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 180
)

var (
	// ErrInvalidWorkoutType is returned for a missing or unknown workout type.
	ErrInvalidWorkoutType = errors.New("invalid workout type")
	// ErrInvalidDuration is returned for a missing, non-numeric or out-of-range duration.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidIntensity is returned for a missing or unsupported intensity.
	ErrInvalidIntensity = errors.New("invalid intensity")
)

// ValidationError pairs a sentinel cause with the message shown to the caller.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

// ExcuseRequest is the decoded generate-excuse payload. A nil field was either
// absent from the body or carried a JSON value of the wrong type.
type ExcuseRequest struct {
	WorkoutType *string
	Duration    *json.Number
	Intensity   *string
}

// Validate checks the fields in order and stops at the first failure.
func (r ExcuseRequest) Validate(catalog *Catalog) error {
	if r.WorkoutType == nil || *r.WorkoutType == "" || !catalog.Has(WorkoutType(*r.WorkoutType)) {
		return &ValidationError{Err: ErrInvalidWorkoutType, Message: MsgInvalidWorkoutType}
	}
	if !validDuration(r.Duration) {
		return &ValidationError{Err: ErrInvalidDuration, Message: MsgInvalidDuration}
	}
	if r.Intensity == nil || !Intensity(*r.Intensity).Valid() {
		return &ValidationError{Err: ErrInvalidIntensity, Message: MsgInvalidIntensity}
	}
	return nil
}

// validDuration treats zero like any other out-of-range value.
func validDuration(n *json.Number) bool {
	if n == nil {
		return false
	}
	minutes, err := n.Float64()
	if err != nil {
		return false
	}
	return minutes >= MinDurationMinutes && minutes <= MaxDurationMinutes
}
