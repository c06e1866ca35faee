// Package hybrid provides the core primitives for simulating hybrid
// dynamical systems: continuous ODE dynamics punctuated by
// instantaneous event updates.
//
//   - [State]: vector of dependent variables
//   - [System]: capability interface for dynamics, events, observation
//   - [StepSizes]: the three run granularities, finest to coarsest
//   - [Stats]: per-run work counters
//
// # Example
//
//	sys := models.NewSIR(0.3, 0.1, 0.2)
//	eu := solver.New(sys, 0, sys.DefaultState(), 100, hybrid.StepSizes{Event: 0.01, Obs: 1, Report: 10})
//	stats, _ := eu.Integrate()
//
// # Thread Safety
//
// A solver instance is NOT thread-safe. For concurrent runs over many
// configurations, use the sweep package, which gives each variant its
// own solver.
package hybrid
