package config

import "sort"

var Presets = map[string]map[string]*Config{
	"sir": {
		"seasonal": {
			Model: "sir", X0: 0, XEnd: 365, EventStep: 0.01, ObsStep: 7, ReportStep: 30,
			InitState: []float64{0.99, 0.01, 0.0},
			Params:    map[string]float64{"beta": 0.3, "gamma": 0.1, "pulse": 0.05},
		},
		"aggressive": {
			Model: "sir", X0: 0, XEnd: 100, EventStep: 0.01, ObsStep: 1, ReportStep: 5,
			InitState: []float64{0.95, 0.05, 0.0},
			Params:    map[string]float64{"beta": 0.5, "gamma": 0.1, "pulse": 0.2},
		},
		"nopulse": {
			Model: "sir", X0: 0, XEnd: 100, EventStep: 0.01, ObsStep: 1, ReportStep: 5,
			InitState: []float64{0.99, 0.01, 0.0},
			Params:    map[string]float64{"beta": 0.3, "gamma": 0.1, "pulse": 0.0},
		},
	},
	"dosing": {
		"daily": {
			Model: "dosing", X0: 0, XEnd: 168, EventStep: 0.01, ObsStep: 24, ReportStep: 24,
			InitState: []float64{0.0},
			Params:    map[string]float64{"elim": 0.1, "dose": 1.0},
		},
		"loading": {
			Model: "dosing", X0: 0, XEnd: 48, EventStep: 0.01, ObsStep: 6, ReportStep: 12,
			InitState: []float64{2.0},
			Params:    map[string]float64{"elim": 0.2, "dose": 0.5},
		},
	},
	"kicked": {
		"resonant": {
			Model: "kicked", X0: 0, XEnd: 20, EventStep: 0.001, ObsStep: 3.14159, ReportStep: 3.14159,
			InitState: []float64{0.0, 0.0},
			Params:    map[string]float64{"omega": 1.0, "damping": 0.05, "kick": 0.5},
		},
		"decay": {
			Model: "kicked", X0: 0, XEnd: 30, EventStep: 0.001, ObsStep: 1, ReportStep: 2,
			InitState: []float64{1.0, 0.0},
			Params:    map[string]float64{"omega": 2.0, "damping": 0.5, "kick": 0.0},
		},
	},
}

func GetPreset(model, name string) *Config {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
