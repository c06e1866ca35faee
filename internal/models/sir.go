package models

import (
	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
)

// SIR is a susceptible/infected/recovered epidemic with pulse
// vaccination: at every event boundary a fraction of the susceptible
// pool is moved directly to the recovered pool.
type SIR struct {
	Beta     float64 // transmission rate
	Gamma    float64 // recovery rate
	PulseFrc float64 // fraction of S vaccinated per pulse
}

func NewSIR(beta, gamma, pulseFrc float64) *SIR {
	return &SIR{Beta: beta, Gamma: gamma, PulseFrc: pulseFrc}
}

func (m *SIR) DefaultState() hybrid.State {
	return hybrid.State{0.99, 0.01, 0.0}
}

func (m *SIR) Derive(x float64, y hybrid.State) hybrid.State {
	s, i := y[0], y[1]
	inf := m.Beta * s * i
	rec := m.Gamma * i
	return hybrid.State{-inf, inf - rec, rec}
}

func (m *SIR) Event(x float64, y hybrid.State) hybrid.State {
	if m.PulseFrc == 0 {
		return nil
	}
	moved := m.PulseFrc * y[0]
	return hybrid.State{-moved, 0, moved}
}

func (m *SIR) Observe(x float64, y hybrid.State) {}
