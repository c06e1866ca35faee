package models

import (
	"fmt"
	"sort"

	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
)

// Defaults describes a runnable configuration for a model: initial
// state, time range, and the step triple.
type Defaults struct {
	State hybrid.State
	X0    float64
	XEnd  float64
	Steps hybrid.StepSizes
}

type entry struct {
	build    func(params map[string]float64) hybrid.System
	defaults Defaults
}

type Registry struct {
	entries map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}

	r.entries["sir"] = entry{
		build: func(p map[string]float64) hybrid.System {
			return NewSIR(pick(p, "beta", 0.3), pick(p, "gamma", 0.1), pick(p, "pulse", 0.1))
		},
		defaults: Defaults{
			State: hybrid.State{0.99, 0.01, 0.0},
			X0:    0,
			XEnd:  100,
			Steps: hybrid.StepSizes{Event: 0.01, Obs: 1.0, Report: 5.0},
		},
	}

	r.entries["dosing"] = entry{
		build: func(p map[string]float64) hybrid.System {
			return NewDosing(pick(p, "elim", 0.2), pick(p, "dose", 1.0))
		},
		defaults: Defaults{
			State: hybrid.State{0.0},
			X0:    0,
			XEnd:  48,
			Steps: hybrid.StepSizes{Event: 0.01, Obs: 6.0, Report: 12.0},
		},
	}

	r.entries["kicked"] = entry{
		build: func(p map[string]float64) hybrid.System {
			return NewKicked(pick(p, "omega", 2.0), pick(p, "damping", 0.1), pick(p, "kick", 0.5))
		},
		defaults: Defaults{
			State: hybrid.State{1.0, 0.0},
			X0:    0,
			XEnd:  20,
			Steps: hybrid.StepSizes{Event: 0.001, Obs: 0.5, Report: 1.0},
		},
	}

	return r
}

func (r *Registry) Get(name string, params map[string]float64) (hybrid.System, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return e.build(params), nil
}

func (r *Registry) Defaults(name string) (Defaults, error) {
	e, ok := r.entries[name]
	if !ok {
		return Defaults{}, fmt.Errorf("unknown model: %s", name)
	}
	d := e.defaults
	d.State = d.State.Clone()
	return d, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func pick(params map[string]float64, key string, fallback float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}
	return fallback
}
