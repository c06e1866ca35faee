// Package sweep runs many independent solver configurations
// concurrently. Each variant owns its own solver; no state is shared
// between runs.
package sweep

import (
	"context"
	"sync"

	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
	"github.com/nmulberry/ode-event-solvers/internal/solver"
)

type Variant struct {
	Name  string
	Sys   hybrid.System
	X0    float64
	Y0    hybrid.State
	XEnd  float64
	Steps hybrid.StepSizes
}

type Outcome struct {
	Name    string
	Stats   hybrid.Stats
	FinalX  float64
	FinalY  hybrid.State
	Samples int
	Err     error
}

type Sweep struct {
	variants []Variant
}

func New(variants []Variant) *Sweep {
	return &Sweep{variants: variants}
}

// Run integrates every variant, one goroutine each. A canceled context
// stops variants that have not started; runs already in flight finish
// before Run returns, since a single integration does not block.
func (s *Sweep) Run(ctx context.Context) ([]Outcome, error) {
	outcomes := make([]Outcome, len(s.variants))

	var wg sync.WaitGroup
	for i, v := range s.variants {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(s.variants); j++ {
				outcomes[j] = Outcome{Name: s.variants[j].Name, Err: err}
			}
			wg.Wait()
			return outcomes, err
		}

		wg.Add(1)
		go func(idx int, v Variant) {
			defer wg.Done()

			eu := solver.New(v.Sys, v.X0, v.Y0, v.XEnd, v.Steps)
			stats, err := eu.Integrate()

			out := Outcome{Name: v.Name, Stats: stats, Err: err}
			if xs := eu.XOut(); len(xs) > 0 {
				out.FinalX = xs[len(xs)-1]
				out.Samples = len(xs)
			}
			if ys := eu.YOut(); len(ys) > 0 {
				out.FinalY = ys[len(ys)-1]
			}
			outcomes[idx] = out
		}(i, v)
	}

	wg.Wait()

	for _, out := range outcomes {
		if out.Err != nil {
			return outcomes, out.Err
		}
	}

	return outcomes, nil
}
