package config

// Presets are named tolerance/switching profiles. "fast" trades accuracy
// for evaluations, "strict" demands both tolerances at tight values, and
// "robust" front-loads bisection for poorly understood functions.
var Presets = map[string]*Config{
	"fast": {
		Algorithm: "hybrid",
		Bracket:   BracketConfig{A: 0.1, B: 100.0},
		Tolerance: ToleranceConfig{FTol: 1e-4, XTol: 1e-4, Both: false},
		Solver: SolverConfig{
			MaxSteps:          500,
			MinSlope:          DefaultMinSlope,
			ContractionFactor: DefaultContractionFactor,
			BisectionSteps:    0,
		},
	},
	"strict": {
		Algorithm: "hybrid",
		Bracket:   BracketConfig{A: 0.1, B: 100.0},
		Tolerance: ToleranceConfig{FTol: 1e-10, XTol: 1e-12, Both: true},
		Solver: SolverConfig{
			MaxSteps:          10000,
			MinSlope:          DefaultMinSlope,
			ContractionFactor: DefaultContractionFactor,
			BisectionSteps:    0,
		},
	},
	"robust": {
		Algorithm: "hybrid",
		Bracket:   BracketConfig{A: 0.1, B: 100.0},
		Tolerance: ToleranceConfig{FTol: DefaultFTol, XTol: DefaultXTol, Both: true},
		Solver: SolverConfig{
			MaxSteps:          DefaultMaxSteps,
			MinSlope:          DefaultMinSlope,
			ContractionFactor: 0.5,
			BisectionSteps:    5,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
