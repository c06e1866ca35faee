package models

import (
	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
)

// Kicked is a damped harmonic oscillator receiving an impulsive
// velocity kick at every event boundary.
type Kicked struct {
	Omega   float64 // natural frequency
	Damping float64
	Kick    float64 // velocity added per event
}

func NewKicked(omega, damping, kick float64) *Kicked {
	return &Kicked{Omega: omega, Damping: damping, Kick: kick}
}

func (m *Kicked) DefaultState() hybrid.State {
	return hybrid.State{1.0, 0.0}
}

func (m *Kicked) Derive(x float64, y hybrid.State) hybrid.State {
	pos, vel := y[0], y[1]
	return hybrid.State{vel, -m.Omega*m.Omega*pos - m.Damping*vel}
}

func (m *Kicked) Event(x float64, y hybrid.State) hybrid.State {
	if m.Kick == 0 {
		return nil
	}
	return hybrid.State{0, m.Kick}
}

func (m *Kicked) Observe(x float64, y hybrid.State) {}
