package hybrid

import (
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Add returns s + other. A nil or shorter other leaves the remaining
// components unchanged, so a nil event delta is a no-op.
func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// AddScaled returns s + other*factor with the same nil/short tolerance
// as Add.
func (s State) AddScaled(other State, factor float64) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]*factor
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// System supplies the continuous dynamics, the instantaneous event
// update, and the observation hook for one model.
type System interface {
	// Derive computes dy/dx at (x, y).
	Derive(x float64, y State) State

	// Event computes an instantaneous state delta applied between
	// bursts of continuous steps. Returning nil means no event.
	Event(x float64, y State) State

	// Observe is fired once before stepping begins and once per
	// report boundary.
	Observe(x float64, y State)
}

// SystemFuncs adapts plain functions to the System interface. Nil
// fields behave as no-ops (DeriveFn must be set).
type SystemFuncs struct {
	DeriveFn  func(x float64, y State) State
	EventFn   func(x float64, y State) State
	ObserveFn func(x float64, y State)
}

func (f SystemFuncs) Derive(x float64, y State) State {
	return f.DeriveFn(x, y)
}

func (f SystemFuncs) Event(x float64, y State) State {
	if f.EventFn == nil {
		return nil
	}
	return f.EventFn(x, y)
}

func (f SystemFuncs) Observe(x float64, y State) {
	if f.ObserveFn != nil {
		f.ObserveFn(x, y)
	}
}

// Stats counts the work done by one integration run.
type Stats struct {
	Evaluations   int
	AcceptedSteps int
}

// StepSizes holds the three step sizes of a run, finest to coarsest.
// Event steps advance time, observation steps bound the event cadence,
// report steps bound the observation cadence.
type StepSizes struct {
	Event  float64
	Obs    float64
	Report float64
}

func (s StepSizes) Validate() error {
	if s.Event <= 0 || s.Obs <= 0 || s.Report <= 0 {
		return ErrNonPositiveStep
	}
	if s.Event > s.Obs || s.Obs > s.Report {
		return ErrUnorderedSteps
	}
	return nil
}
