package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/numgrove/rootfind"
)

const (
	DefaultFTol              = 1e-6
	DefaultXTol              = 1e-6
	DefaultMaxSteps          = 3000
	DefaultMinSlope          = 1e-60
	DefaultContractionFactor = 0.7071
	DefaultBisectionSteps    = 0
)

// Config is the on-disk description of a solver run: which algorithm to
// use, the search interval, and the tolerances/switching knobs that map
// onto rootfind.Options.
type Config struct {
	Algorithm string          `yaml:"algorithm"`
	Bracket   BracketConfig   `yaml:"bracket"`
	Tolerance ToleranceConfig `yaml:"tolerance"`
	Solver    SolverConfig    `yaml:"solver"`
}

type BracketConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

type ToleranceConfig struct {
	FTol float64 `yaml:"ftol"`
	XTol float64 `yaml:"xtol"`
	Both bool    `yaml:"both"`
}

type SolverConfig struct {
	MaxSteps          int     `yaml:"max_steps"`
	MinSlope          float64 `yaml:"min_slope"`
	ContractionFactor float64 `yaml:"contraction_factor"`
	BisectionSteps    int     `yaml:"bisection_steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: "hybrid",
		Bracket:   BracketConfig{A: 0.1, B: 100.0},
		Tolerance: ToleranceConfig{
			FTol: DefaultFTol,
			XTol: DefaultXTol,
			Both: true,
		},
		Solver: SolverConfig{
			MaxSteps:          DefaultMaxSteps,
			MinSlope:          DefaultMinSlope,
			ContractionFactor: DefaultContractionFactor,
			BisectionSteps:    DefaultBisectionSteps,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
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

// SolverOptions translates the file representation into rootfind.Options.
// Trace and Observe hooks are runtime concerns and stay nil here; callers
// attach them after translation.
func (c *Config) SolverOptions() rootfind.Options {
	return rootfind.Options{
		FTol:              c.Tolerance.FTol,
		XTol:              c.Tolerance.XTol,
		Both:              c.Tolerance.Both,
		MaxSteps:          c.Solver.MaxSteps,
		MinSlope:          c.Solver.MinSlope,
		ContractionFactor: c.Solver.ContractionFactor,
		BisectionSteps:    c.Solver.BisectionSteps,
	}
}
