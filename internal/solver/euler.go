// Package solver implements the fixed-step forward Euler method with
// multi-rate event and observation scheduling.
package solver

import (
	"math"

	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
)

// Euler integrates a hybrid system forward in time with a fixed event
// step, applying instantaneous event deltas at the observation rate
// and recording output at the report rate.
type Euler struct {
	sys   hybrid.System
	x     float64
	y     hybrid.State
	xEnd  float64
	steps hybrid.StepSizes

	xOut  []float64
	yOut  []hybrid.State
	stats hybrid.Stats
}

// New returns a solver for sys over [x0, xEnd] starting from y0.
// The step triple is ordered finest to coarsest; only the event step
// advances time.
func New(sys hybrid.System, x0 float64, y0 hybrid.State, xEnd float64, steps hybrid.StepSizes) *Euler {
	return &Euler{
		sys:   sys,
		x:     x0,
		y:     y0.Clone(),
		xEnd:  xEnd,
		steps: steps,
		xOut:  make([]float64, 0),
		yOut:  make([]hybrid.State, 0),
	}
}

func (e *Euler) validate() error {
	if e.sys == nil {
		return hybrid.ErrNilSystem
	}
	if len(e.y) == 0 {
		return hybrid.ErrEmptyState
	}
	if e.xEnd < e.x {
		return hybrid.ErrReversedRange
	}
	return e.steps.Validate()
}

// Integrate runs the three nested loops to completion. All loop counts
// are fixed up front by ceiling division, so a report step that does
// not evenly divide the interval overshoots xEnd rather than clamping.
func (e *Euler) Integrate() (hybrid.Stats, error) {
	if err := e.validate(); err != nil {
		return e.stats, err
	}

	e.record()
	e.sys.Observe(e.x, e.y)

	numReport := int(math.Ceil((e.xEnd - e.x) / e.steps.Report))
	numObsPerReport := int(math.Ceil(e.steps.Report / e.steps.Obs))
	numEventPerObs := int(math.Ceil(e.steps.Obs / e.steps.Event))

	for i := 0; i < numReport; i++ {
		for j := 0; j < numObsPerReport; j++ {
			e.y = e.eventStep()
			for k := 0; k < numEventPerObs; k++ {
				xNew, yNew := e.step()
				e.x = xNew
				e.y = yNew
				e.stats.Evaluations++
				e.stats.AcceptedSteps++
			}
		}
		e.sys.Observe(e.x, e.y)
		e.record()
	}

	e.record()
	return e.stats, nil
}

// step performs one forward Euler update, advancing time by the event
// step.
func (e *Euler) step() (float64, hybrid.State) {
	dy := e.sys.Derive(e.x, e.y)
	xNew := e.x + e.steps.Event
	yNew := e.y.AddScaled(dy, e.steps.Event)
	return xNew, yNew
}

// eventStep applies the instantaneous event delta. Time does not
// advance and no statistics are counted.
func (e *Euler) eventStep() hybrid.State {
	dy := e.sys.Event(e.x, e.y)
	return e.y.Add(dy)
}

func (e *Euler) record() {
	e.xOut = append(e.xOut, e.x)
	e.yOut = append(e.yOut, e.y.Clone())
}

// XOut returns the recorded output times: the initial time, one sample
// per report boundary, and the final time.
func (e *Euler) XOut() []float64 { return e.xOut }

// YOut returns the recorded states, parallel to XOut.
func (e *Euler) YOut() []hybrid.State { return e.yOut }

// Stats returns the run counters accumulated so far.
func (e *Euler) Stats() hybrid.Stats { return e.stats }
