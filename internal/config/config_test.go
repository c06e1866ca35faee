package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "sir" {
		t.Errorf("expected model sir, got %s", cfg.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"reversed range", func(c *Config) { c.XEnd = -1 }, hybrid.ErrReversedRange},
		{"zero event step", func(c *Config) { c.EventStep = 0 }, hybrid.ErrNonPositiveStep},
		{"event above obs", func(c *Config) { c.EventStep = c.ObsStep * 2 }, hybrid.ErrUnorderedSteps},
		{"obs above report", func(c *Config) { c.ObsStep = c.ReportStep * 2 }, hybrid.ErrUnorderedSteps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Model = "dosing"
	cfg.XEnd = 48
	cfg.ObsStep = 6
	cfg.ReportStep = 12
	cfg.InitState = []float64{2.0}
	cfg.Params = map[string]float64{"elim": 0.2, "dose": 0.5}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Model != "dosing" || loaded.XEnd != 48 || loaded.ObsStep != 6 {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
	if len(loaded.InitState) != 1 || loaded.InitState[0] != 2.0 {
		t.Errorf("init state lost: %v", loaded.InitState)
	}
	if loaded.Params["dose"] != 0.5 {
		t.Errorf("params lost: %v", loaded.Params)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("sir", "seasonal")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.XEnd != 365 {
		t.Errorf("expected x_end 365, got %f", cfg.XEnd)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("sir", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "seasonal"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("dosing")
	if len(presets) == 0 {
		t.Error("expected presets for dosing")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestAllPresetsValidate(t *testing.T) {
	for model, group := range Presets {
		for name, cfg := range group {
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s/%s invalid: %v", model, name, err)
			}
		}
	}
}
