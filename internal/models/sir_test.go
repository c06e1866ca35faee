package models

import (
	"math"
	"testing"

	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
	"github.com/nmulberry/ode-event-solvers/internal/solver"
)

func TestSIRConservesPopulation(t *testing.T) {
	sys := NewSIR(0.3, 0.1, 0.1)

	eu := solver.New(sys, 0, sys.DefaultState(), 100, hybrid.StepSizes{Event: 0.01, Obs: 1, Report: 5})
	if _, err := eu.Integrate(); err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	for i, y := range eu.YOut() {
		total := y[0] + y[1] + y[2]
		if math.Abs(total-1.0) > 1e-9 {
			t.Errorf("sample %d: population not conserved: %f", i, total)
		}
	}
}

func TestSIRPulseMovesSusceptibleToRecovered(t *testing.T) {
	sys := NewSIR(0.3, 0.1, 0.2)
	y := hybrid.State{0.5, 0.1, 0.4}

	dy := sys.Event(0, y)
	if dy[0] != -0.1 {
		t.Errorf("expected dS = -0.1, got %f", dy[0])
	}
	if dy[2] != 0.1 {
		t.Errorf("expected dR = +0.1, got %f", dy[2])
	}
	if dy[1] != 0 {
		t.Errorf("pulse must not touch I, got %f", dy[1])
	}
}

func TestSIRWithoutPulseMatchesPlainEpidemic(t *testing.T) {
	pulsed := NewSIR(0.3, 0.1, 0.0)
	plain := hybrid.SystemFuncs{DeriveFn: pulsed.Derive}

	steps := hybrid.StepSizes{Event: 0.01, Obs: 1, Report: 5}
	a := solver.New(pulsed, 0, pulsed.DefaultState(), 50, steps)
	b := solver.New(plain, 0, pulsed.DefaultState(), 50, steps)

	if _, err := a.Integrate(); err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	if _, err := b.Integrate(); err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	ya, yb := a.YOut(), b.YOut()
	for i := range ya {
		for j := range ya[i] {
			if ya[i][j] != yb[i][j] {
				t.Fatalf("zero pulse changed the trajectory at sample %d", i)
			}
		}
	}
}

func TestSIRVaccinationSuppressesEpidemic(t *testing.T) {
	steps := hybrid.StepSizes{Event: 0.01, Obs: 1, Report: 10}

	none := NewSIR(0.5, 0.1, 0.0)
	heavy := NewSIR(0.5, 0.1, 0.3)

	a := solver.New(none, 0, none.DefaultState(), 100, steps)
	b := solver.New(heavy, 0, heavy.DefaultState(), 100, steps)

	if _, err := a.Integrate(); err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	if _, err := b.Integrate(); err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	peak := func(trace []hybrid.State) float64 {
		max := 0.0
		for _, y := range trace {
			if y[1] > max {
				max = y[1]
			}
		}
		return max
	}

	if peak(b.YOut()) >= peak(a.YOut()) {
		t.Errorf("pulse vaccination should lower the infection peak: %f vs %f", peak(b.YOut()), peak(a.YOut()))
	}
}
