package models

import (
	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
)

// Dosing is a one-compartment pharmacokinetic model: first-order
// elimination between bolus doses delivered at the event rate.
type Dosing struct {
	Elim float64 // elimination rate constant
	Dose float64 // bolus amount per event
}

func NewDosing(elim, dose float64) *Dosing {
	return &Dosing{Elim: elim, Dose: dose}
}

func (m *Dosing) DefaultState() hybrid.State {
	return hybrid.State{0.0}
}

func (m *Dosing) Derive(x float64, y hybrid.State) hybrid.State {
	return hybrid.State{-m.Elim * y[0]}
}

func (m *Dosing) Event(x float64, y hybrid.State) hybrid.State {
	if m.Dose == 0 {
		return nil
	}
	return hybrid.State{m.Dose}
}

func (m *Dosing) Observe(x float64, y hybrid.State) {}
