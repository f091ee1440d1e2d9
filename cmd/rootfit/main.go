package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/numgrove/rootfind"
	"github.com/numgrove/rootfind/internal/config"
	"github.com/numgrove/rootfind/weibull"
)

var (
	configFile string
	preset     string
	verbose    bool
	plot       bool

	algorithm string
	bracketA  float64
	bracketB  float64
	ftol      float64
	xtol      float64
)

// main is the entry point for the rootfit CLI; it registers the fit, solve
// and presets commands and executes the root command, exiting with status 1
// on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "rootfit",
		Short: "Weibull moment fitting and scalar root finding",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print solver iterations")

	fitCmd := &cobra.Command{
		Use:   "fit [files...]",
		Short: "fit a Weibull distribution to each data file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runFit,
	}
	fitCmd.Flags().BoolVar(&plot, "plot", false, "plot the shape objective around the fitted root")

	solveCmd := &cobra.Command{
		Use:   "solve [function]",
		Short: "locate a root of a named demo function",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&algorithm, "algorithm", "", "bisection|secant|regula-falsi|hybrid (overrides config)")
	solveCmd.Flags().Float64Var(&bracketA, "a", math.NaN(), "left end of the search interval")
	solveCmd.Flags().Float64Var(&bracketB, "b", math.NaN(), "right end of the search interval")
	solveCmd.Flags().Float64Var(&ftol, "ftol", 0, "residual tolerance (overrides config)")
	solveCmd.Flags().Float64Var(&xtol, "xtol", 0, "step tolerance (overrides config)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(fitCmd, solveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: preset, then file, then
// defaults. Preset and file are mutually exclusive.
func loadConfig() (*config.Config, error) {
	if preset != "" && configFile != "" {
		return nil, fmt.Errorf("--preset and --config are mutually exclusive")
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (see 'rootfit presets')", preset)
		}
		return cfg, nil
	}
	if configFile != "" {
		return config.Load(configFile)
	}
	return config.DefaultConfig(), nil
}

func solverOptions(cfg *config.Config) rootfind.Options {
	opts := cfg.SolverOptions()
	if verbose {
		opts.Trace = func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		}
	}
	return opts
}

type fitResult struct {
	file   string
	n      int
	params weibull.Params
}

func runFit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	results := make([]fitResult, len(args))
	samples := make([]*weibull.Sample, len(args))

	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			xs, err := weibull.ReadSeries(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			s, err := weibull.NewSample(xs)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			params, err := s.Fit(solverOptions(cfg))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = fitResult{
				file:   path,
				n:      s.Len(),
				params: params,
			}
			samples[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tN\tSHAPE\tSCALE")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\n", r.file, r.n, r.params.Shape, r.params.Scale)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot {
		for i, r := range results {
			plotObjective(samples[i], r)
		}
	}
	return nil
}

// plotObjective draws the shape objective over a window around the fitted
// root, so a flat or multi-crossing objective is visible at a glance.
func plotObjective(s *weibull.Sample, r fitResult) {
	const points = 80

	obj := s.ShapeObjective()
	lo := r.params.Shape / 2
	hi := r.params.Shape * 2

	data := make([]float64, points)
	for i := 0; i < points; i++ {
		k := lo + (hi-lo)*float64(i)/float64(points-1)
		data[i] = obj(k)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s: objective over shape [%.3f, %.3f]", r.file, lo, hi)),
	)
	fmt.Println()
	fmt.Println(graph)
}

// demoFunctions are the named targets for the solve command.
var demoFunctions = map[string]struct {
	f     rootfind.Func
	about string
}{
	"cubic": {
		f:     func(x float64) float64 { d := x - 0.7; return 2*d + 0.03*d*d*d },
		about: "gentle cubic, root at 0.7",
	},
	"quartic": {
		f:     func(x float64) float64 { d := x - 0.7; return d * d * d * d },
		about: "quadruple root at 0.7, no sign change",
	},
	"shelf": {
		f:     func(x float64) float64 { return math.Max(-1, math.Min(1, 10*x)) },
		about: "clipped linear ramp, flat outside [-0.1, 0.1]",
	},
	"peaked": {
		f:     func(x float64) float64 { return x * math.Exp(-math.Abs(x)) },
		about: "x·e^(−|x|), nearly flat far from the origin",
	},
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	demo, ok := demoFunctions[args[0]]
	if !ok {
		names := make([]string, 0, len(demoFunctions))
		for name := range demoFunctions {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown function %q, want one of %v", args[0], names)
	}

	if algorithm != "" {
		cfg.Algorithm = algorithm
	}
	if !math.IsNaN(bracketA) {
		cfg.Bracket.A = bracketA
	}
	if !math.IsNaN(bracketB) {
		cfg.Bracket.B = bracketB
	}
	if ftol > 0 {
		cfg.Tolerance.FTol = ftol
	}
	if xtol > 0 {
		cfg.Tolerance.XTol = xtol
	}

	opts := solverOptions(cfg)

	var res rootfind.Result
	switch cfg.Algorithm {
	case "bisection":
		res, err = rootfind.Bisection(demo.f, cfg.Bracket.A, cfg.Bracket.B, opts)
	case "secant":
		res, err = rootfind.Secant(demo.f, cfg.Bracket.A, cfg.Bracket.B, opts)
	case "regula-falsi":
		res, err = rootfind.RegulaFalsi(demo.f, cfg.Bracket.A, cfg.Bracket.B, opts)
	case "hybrid":
		res, err = rootfind.FindRoot(demo.f, cfg.Bracket.A, cfg.Bracket.B, opts)
	default:
		return fmt.Errorf("unknown algorithm %q", cfg.Algorithm)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", args[0], demo.about)
	fmt.Printf("root=%.10g residual=%.3g steps=%d calls=%d\n",
		res.Root, demo.f(res.Root), res.Steps, res.Calls)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALGORITHM\tFTOL\tXTOL\tMAX_STEPS\tBISECTION_STEPS")
	for _, name := range names {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%d\t%d\n",
			name, cfg.Algorithm,
			cfg.Tolerance.FTol, cfg.Tolerance.XTol,
			cfg.Solver.MaxSteps, cfg.Solver.BisectionSteps)
	}
	return w.Flush()
}
