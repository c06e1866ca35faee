package solver_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
	"github.com/nmulberry/ode-event-solvers/internal/solver"
)

var _ = Describe("multi-rate scheduling", func() {
	decay := hybrid.SystemFuncs{
		DeriveFn: func(x float64, y hybrid.State) hybrid.State {
			return hybrid.State{-0.5 * y[0]}
		},
	}

	It("leaves the trajectory independent of observation and report slicing", func() {
		slicings := []hybrid.StepSizes{
			{Event: 0.01, Obs: 0.01, Report: 2},
			{Event: 0.01, Obs: 0.1, Report: 2},
			{Event: 0.01, Obs: 2, Report: 2},
			{Event: 0.01, Obs: 0.5, Report: 1},
		}

		finals := make([]float64, 0, len(slicings))
		for _, steps := range slicings {
			eu := solver.New(decay, 0, hybrid.State{1}, 4, steps)
			_, err := eu.Integrate()
			Expect(err).NotTo(HaveOccurred())

			yOut := eu.YOut()
			finals = append(finals, yOut[len(yOut)-1][0])
		}

		for i := 1; i < len(finals); i++ {
			Expect(finals[i]).To(Equal(finals[0]))
		}
	})

	It("applies the event before the burst of continuous steps", func() {
		var eventTimes []float64
		var deriveTimes []float64

		sys := hybrid.SystemFuncs{
			DeriveFn: func(x float64, y hybrid.State) hybrid.State {
				deriveTimes = append(deriveTimes, x)
				return hybrid.State{0}
			},
			EventFn: func(x float64, y hybrid.State) hybrid.State {
				eventTimes = append(eventTimes, x)
				return nil
			},
		}

		eu := solver.New(sys, 0, hybrid.State{0}, 1, hybrid.StepSizes{Event: 0.25, Obs: 0.5, Report: 1})
		_, err := eu.Integrate()
		Expect(err).NotTo(HaveOccurred())

		// Two middle iterations, each with two inner steps. The
		// event at each boundary fires at the same time as the
		// first derivative sample of its burst.
		Expect(eventTimes).To(HaveLen(2))
		Expect(deriveTimes).To(HaveLen(4))
		Expect(eventTimes[0]).To(Equal(deriveTimes[0]))
		Expect(eventTimes[1]).To(Equal(deriveTimes[2]))
	})

	It("counts one evaluation and one accepted step per inner iteration", func() {
		eu := solver.New(decay, 0, hybrid.State{1}, 3, hybrid.StepSizes{Event: 0.05, Obs: 0.25, Report: 1.5})
		stats, err := eu.Integrate()
		Expect(err).NotTo(HaveOccurred())

		// numReport=2, numObsPerReport=6, numEventPerObs=5.
		Expect(stats.Evaluations).To(Equal(60))
		Expect(stats.AcceptedSteps).To(Equal(stats.Evaluations))
	})

	It("rejects a bad configuration before touching the trace", func() {
		eu := solver.New(decay, 0, hybrid.State{1}, -1, hybrid.StepSizes{Event: 0.1, Obs: 0.1, Report: 0.1})
		_, err := eu.Integrate()
		Expect(err).To(MatchError(hybrid.ErrReversedRange))
		Expect(eu.XOut()).To(BeEmpty())
		Expect(eu.YOut()).To(BeEmpty())
	})
})
