package domain

import (
	"errors"
	"fmt"
	"sort"
)

// WorkoutType identifies a workout category for which excuses are authored.
type WorkoutType string

const (
	WorkoutRunning       WorkoutType = "running"
	WorkoutWeightlifting WorkoutType = "weightlifting"
	WorkoutYoga          WorkoutType = "yoga"
	WorkoutSwimming      WorkoutType = "swimming"
	WorkoutCycling       WorkoutType = "cycling"
	WorkoutHIIT          WorkoutType = "HIIT"
)

// Intensity is the effort level the caller planned for the workout.
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// Valid reports whether i is one of the supported intensity levels.
func (i Intensity) Valid() bool {
	switch i {
	case IntensityLight, IntensityModerate, IntensityIntense:
		return true
	}
	return false
}

// ErrEmptyCatalog is returned when a catalog would have no usable entries.
var ErrEmptyCatalog = errors.New("catalog must not be empty")

// Catalog holds the excuse phrases per workout type and the counter-motivations.
// It is read-only once constructed and safe for concurrent use.
type Catalog struct {
	excuses            map[WorkoutType][]string
	counterMotivations []string
}

// NewCatalog copies the provided phrases into an immutable Catalog.
func NewCatalog(excuses map[WorkoutType][]string, counterMotivations []string) (*Catalog, error) {
	if len(excuses) == 0 || len(counterMotivations) == 0 {
		return nil, ErrEmptyCatalog
	}

	out := make(map[WorkoutType][]string, len(excuses))
	for workoutType, phrases := range excuses {
		if workoutType == "" {
			return nil, errors.New("catalog contains an empty workout type")
		}
		if len(phrases) == 0 {
			return nil, fmt.Errorf("%w: no excuses for %q", ErrEmptyCatalog, workoutType)
		}
		out[workoutType] = append([]string(nil), phrases...)
	}

	return &Catalog{
		excuses:            out,
		counterMotivations: append([]string(nil), counterMotivations...),
	}, nil
}

// DefaultCatalog returns the shipped catalog.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(map[WorkoutType][]string{
		WorkoutRunning: {
			"my shoes are having an existential crisis",
			"I saw a weather forecast from a parallel universe where it's raining",
			"I'm saving my energy for professional couch surfing",
		},
		WorkoutWeightlifting: {
			"the weights looked at me funny",
			"my muscles are on a meditation retreat",
			"gravity is particularly strong today",
		},
		WorkoutYoga: {
			"my chakras are already perfectly aligned... probably",
			"my yoga mat is practicing social distancing",
			"my zen is at maximum capacity",
		},
		WorkoutSwimming: {
			"the water molecules requested a day off",
			"my swimsuit is attending a fashion show",
			"I'm allergic to chlorine today only",
		},
		WorkoutCycling: {
			"my bike is having a quarter-life crisis",
			"the wind is too aerodynamic today",
			"my pedals are practicing mindfulness",
		},
		WorkoutHIIT: {
			"my intervals need a interval",
			"my high intensity is feeling rather low",
			"my burpees have burped their last",
		},
	}, []string{
		"those endorphins won't release themselves",
		"your future self is sending eye rolls from tomorrow",
		"your workout playlist is feeling neglected",
		"that post-workout glow doesn't come from Netflix",
		"your muscles are plotting their revenge",
		"the gym misses your awkward selfies",
	})
	if err != nil {
		panic(err)
	}
	return catalog
}

// Has reports whether the catalog carries excuses for the workout type.
func (c *Catalog) Has(workoutType WorkoutType) bool {
	_, ok := c.excuses[workoutType]
	return ok
}

// Excuses returns a copy of the excuse phrases for the workout type.
func (c *Catalog) Excuses(workoutType WorkoutType) []string {
	return append([]string(nil), c.excuses[workoutType]...)
}

// CounterMotivations returns a copy of the counter-motivation phrases.
func (c *Catalog) CounterMotivations() []string {
	return append([]string(nil), c.counterMotivations...)
}

// WorkoutTypes lists the catalog keys in lexical order.
func (c *Catalog) WorkoutTypes() []WorkoutType {
	out := make([]WorkoutType, 0, len(c.excuses))
	for workoutType := range c.excuses {
		out = append(out, workoutType)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
