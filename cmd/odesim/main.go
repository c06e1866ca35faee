package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/nmulberry/ode-event-solvers/internal/config"
	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
	"github.com/nmulberry/ode-event-solvers/internal/models"
	"github.com/nmulberry/ode-event-solvers/internal/solver"
	"github.com/nmulberry/ode-event-solvers/internal/store"
	"github.com/nmulberry/ode-event-solvers/internal/sweep"
	"github.com/nmulberry/ode-event-solvers/internal/tui"
)

var (
	dataDir    string
	x0         float64
	xEnd       float64
	eventStep  float64
	obsStep    float64
	reportStep float64
	configFile string
	preset     string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odesim",
		Short: "multi-rate ODE and event simulation",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&x0, "x0", 0, "initial time")
	runCmd.Flags().Float64Var(&xEnd, "x-end", 0, "final time (0 = model default)")
	runCmd.Flags().Float64Var(&eventStep, "event-step", 0, "event step size (0 = model default)")
	runCmd.Flags().Float64Var(&obsStep, "obs-step", 0, "observation step size (0 = model default)")
	runCmd.Flags().Float64Var(&reportStep, "report-step", 0, "report step size (0 = model default)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&verbose, "verbose", false, "print each report sample")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live [run_id]",
		Short: "replay a run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  liveReplay,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available models",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range models.NewRegistry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [model]",
		Short: "benchmark model across step sizes",
		Args:  cobra.ExactArgs(1),
		RunE:  benchModel,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, liveCmd, presetsCmd, modelsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildConfig(cmd *cobra.Command, model string) (*config.Config, error) {
	registry := models.NewRegistry()
	defaults, err := registry.Defaults(model)
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	cfg.Model = model
	cfg.X0 = defaults.X0
	cfg.XEnd = defaults.XEnd
	cfg.EventStep = defaults.Steps.Event
	cfg.ObsStep = defaults.Steps.Obs
	cfg.ReportStep = defaults.Steps.Report
	cfg.InitState = defaults.State

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		chosen := *p
		cfg = &chosen
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		cfg.Model = model
	}

	if cmd.Flags().Changed("x0") {
		cfg.X0 = x0
	}
	if cmd.Flags().Changed("x-end") {
		cfg.XEnd = xEnd
	}
	if cmd.Flags().Changed("event-step") {
		cfg.EventStep = eventStep
	}
	if cmd.Flags().Changed("obs-step") {
		cfg.ObsStep = obsStep
	}
	if cmd.Flags().Changed("report-step") {
		cfg.ReportStep = reportStep
	}

	if len(cfg.InitState) == 0 {
		cfg.InitState = defaults.State
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	model := args[0]

	cfg, err := buildConfig(cmd, model)
	if err != nil {
		return err
	}

	registry := models.NewRegistry()
	sys, err := registry.Get(model, cfg.Params)
	if err != nil {
		return err
	}

	if verbose {
		sys = hybrid.SystemFuncs{
			DeriveFn:  sys.Derive,
			EventFn:   sys.Event,
			ObserveFn: func(x float64, y hybrid.State) { fmt.Printf("  x=%.4f y=%v\n", x, y) },
		}
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s from x=%.2f to x=%.2f...\n", model, cfg.X0, cfg.XEnd)
	start := time.Now()

	eu := solver.New(sys, cfg.X0, hybrid.State(cfg.InitState), cfg.XEnd, cfg.Steps())
	stats, err := eu.Integrate()
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(model, cfg.X0, cfg.XEnd, cfg.Steps(), stats, eu.XOut(), eu.YOut())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(eu.XOut()))
	fmt.Printf("derivative evaluations: %d\n", stats.Evaluations)
	fmt.Printf("accepted steps: %d\n", stats.AcceptedSteps)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tRANGE\tSTEPS\tEVALS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%.1f, %.1f]\t%.3g/%.3g/%.3g\t%d\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.X0,
			run.XEnd,
			run.EventStep,
			run.ObsStep,
			run.ReportStep,
			run.Evals,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(states))

	numVars := len(states[0])
	maxPlots := 6
	if numVars > maxPlots {
		numVars = maxPlots
	}

	for varIdx := 0; varIdx < numVars; varIdx++ {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		caption := fmt.Sprintf("y%d vs time", varIdx)
		if meta.Model == "sir" {
			switch varIdx {
			case 0:
				caption = "susceptible"
			case 1:
				caption = "infected"
			case 2:
				caption = "recovered"
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func liveReplay(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := store.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("no data to replay")
	}

	return tui.Run(meta.Model, times, states)
}

func benchModel(cmd *cobra.Command, args []string) error {
	model := args[0]

	registry := models.NewRegistry()
	defaults, err := registry.Defaults(model)
	if err != nil {
		return err
	}

	eventSteps := []float64{0.0001, 0.001, 0.01}

	fmt.Printf("benchmarking %s\n\n", model)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EVENT STEP\tEVALS\tTIME\tEVALS/SEC")

	variants := make([]sweep.Variant, 0, len(eventSteps))
	for _, h := range eventSteps {
		sys, err := registry.Get(model, nil)
		if err != nil {
			return err
		}
		steps := defaults.Steps
		steps.Event = h
		variants = append(variants, sweep.Variant{
			Name:  fmt.Sprintf("h=%g", h),
			Sys:   sys,
			X0:    defaults.X0,
			Y0:    defaults.State,
			XEnd:  defaults.XEnd,
			Steps: steps,
		})
	}

	start := time.Now()
	outcomes, err := sweep.New(variants).Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for i, out := range outcomes {
		perSec := float64(out.Stats.Evaluations) / elapsed.Seconds()
		fmt.Fprintf(w, "%g\t%d\t%v\t%.0f\n", eventSteps[i], out.Stats.Evaluations, elapsed, perSec)
	}

	return w.Flush()
}
