package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nmulberry/ode-event-solvers/internal/hybrid"
)

const (
	DefaultEventStep  = 0.01
	DefaultObsStep    = 1.0
	DefaultReportStep = 5.0
	DefaultXEnd       = 100.0
)

type Config struct {
	Model      string             `yaml:"model"`
	X0         float64            `yaml:"x0"`
	XEnd       float64            `yaml:"x_end"`
	EventStep  float64            `yaml:"event_step"`
	ObsStep    float64            `yaml:"obs_step"`
	ReportStep float64            `yaml:"report_step"`
	InitState  []float64          `yaml:"init_state"`
	Params     map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "sir",
		X0:         0,
		XEnd:       DefaultXEnd,
		EventStep:  DefaultEventStep,
		ObsStep:    DefaultObsStep,
		ReportStep: DefaultReportStep,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Steps returns the configured step triple, finest to coarsest.
func (c *Config) Steps() hybrid.StepSizes {
	return hybrid.StepSizes{Event: c.EventStep, Obs: c.ObsStep, Report: c.ReportStep}
}

func (c *Config) Validate() error {
	if c.XEnd < c.X0 {
		return hybrid.ErrReversedRange
	}
	return c.Steps().Validate()
}
