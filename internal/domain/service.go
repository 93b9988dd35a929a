// Package domain defines the business logic for the excuse service.
package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrSelection indicates the picker returned an index outside the phrase list.
var ErrSelection = errors.New("excuse selection out of range")

// Picker chooses an index in [0, n).
type Picker interface {
	IntN(n int) int
}

type randomPicker struct{}

func (randomPicker) IntN(n int) int { return rand.IntN(n) }

// RandomPicker returns a Picker backed by the process-wide random source.
func RandomPicker() Picker { return randomPicker{} }

// WorkoutDetails echoes the validated request back to the caller.
type WorkoutDetails struct {
	WorkoutType     WorkoutType
	DurationMinutes json.Number
	Intensity       Intensity
}

// Excuse is the generated result for a single request.
type Excuse struct {
	Excuse            string
	CounterMotivation string
	Details           WorkoutDetails
}

// Service generates excuses from an immutable catalog.
type Service struct {
	catalog *Catalog
	picker  Picker
}

// NewService constructs a Service. A nil picker falls back to RandomPicker.
func NewService(catalog *Catalog, picker Picker) *Service {
	if picker == nil {
		picker = RandomPicker()
	}
	return &Service{catalog: catalog, picker: picker}
}

// Catalog exposes the catalog the service draws from.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// GenerateExcuse validates the request and draws one excuse and one counter-motivation.
func (s *Service) GenerateExcuse(req ExcuseRequest) (*Excuse, error) {
	if err := req.Validate(s.catalog); err != nil {
		return nil, err
	}

	workoutType := WorkoutType(*req.WorkoutType)
	excuse, err := s.pick(s.catalog.excuses[workoutType])
	if err != nil {
		return nil, fmt.Errorf("pick excuse for %s: %w", workoutType, err)
	}
	counter, err := s.pick(s.catalog.counterMotivations)
	if err != nil {
		return nil, fmt.Errorf("pick counter-motivation: %w", err)
	}

	return &Excuse{
		Excuse:            fmt.Sprintf("I can't do %s today because %s", workoutType, excuse),
		CounterMotivation: "But remember: " + counter,
		Details: WorkoutDetails{
			WorkoutType:     workoutType,
			DurationMinutes: *req.Duration,
			Intensity:       Intensity(*req.Intensity),
		},
	}, nil
}

func (s *Service) pick(phrases []string) (string, error) {
	idx := s.picker.IntN(len(phrases))
	if idx < 0 || idx >= len(phrases) {
		return "", fmt.Errorf("%w: index %d of %d", ErrSelection, idx, len(phrases))
	}
	return phrases[idx], nil
}
