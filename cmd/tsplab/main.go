// Command tsplab races the Genetic Algorithm and Simulated Annealing engines
// over one random problem and reports which found the shorter tour.
//
// Both engines run as independently stepped goroutines over the same shared
// read-only problem, streaming per-step progress into one CSV file. A final
// summary compares best lengths; optional PNG plots show the convergence
// curves and the winning tour.
//
// Configuration comes from built-in defaults, overridden by an optional YAML
// file (-config), overridden by flags. With -bench the binary switches to the
// repeated-run harness and writes per-run records plus per-engine summaries.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tsplab/tsplab/bench"
	"github.com/tsplab/tsplab/ga"
	"github.com/tsplab/tsplab/opt"
	"github.com/tsplab/tsplab/sa"
	"github.com/tsplab/tsplab/tsp"
)

// defaultConfigYAML is the built-in configuration; a -config file overlays
// it field by field, flags overlay both.
const defaultConfigYAML = `
problem:
  cities: 250
  width: 800
  height: 600
  seed: 42
ga:
  population_size: 1000
  generations: 5000
  mutation_rate: 0.02
  tournament_k: 5
  elitism: 5
  stall_limit: 500
sa:
  initial_temp: 1000
  final_temp: 0.001
  alpha: 0        # 0 selects the 1/(0.2*N) auto scale
  neighbors_per_temp: 5
  stall_limit: 50000
run:
  seed: 1
  out_dir: out
  plots: false
  bench_runs: 5
  max_steps: 200000
`

type problemConfig struct {
	Cities int   `yaml:"cities"`
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

type gaConfig struct {
	PopulationSize int     `yaml:"population_size"`
	Generations    int     `yaml:"generations"`
	MutationRate   float64 `yaml:"mutation_rate"`
	TournamentK    int     `yaml:"tournament_k"`
	Elitism        int     `yaml:"elitism"`
	StallLimit     int     `yaml:"stall_limit"`
}

type saConfig struct {
	InitialTemp      float64 `yaml:"initial_temp"`
	FinalTemp        float64 `yaml:"final_temp"`
	Alpha            float64 `yaml:"alpha"`
	NeighborsPerTemp int     `yaml:"neighbors_per_temp"`
	StallLimit       int     `yaml:"stall_limit"`
}

type runConfig struct {
	Seed      int64  `yaml:"seed"`
	OutDir    string `yaml:"out_dir"`
	Plots     bool   `yaml:"plots"`
	BenchRuns int    `yaml:"bench_runs"`
	MaxSteps  int    `yaml:"max_steps"`
}

type config struct {
	Problem problemConfig `yaml:"problem"`
	GA      gaConfig      `yaml:"ga"`
	SA      saConfig      `yaml:"sa"`
	Run     runConfig     `yaml:"run"`
}

// loadConfig unmarshals the built-in defaults and overlays the optional file.
func loadConfig(path string) (config, error) {
	var cfg config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
		return cfg, fmt.Errorf("parse built-in config: %w", err)
	}

	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// gaLib converts the YAML surface into the library Config.
func (c config) gaLib() ga.Config {
	return ga.Config{
		PopulationSize: c.GA.PopulationSize,
		Generations:    c.GA.Generations,
		MutationRate:   c.GA.MutationRate,
		TournamentK:    c.GA.TournamentK,
		Elitism:        c.GA.Elitism,
		StallLimit:     c.GA.StallLimit,
	}
}

// saLib converts the YAML surface into the library Config; alpha 0 selects
// the classic 1/(0.2*N) scale so the schedule length tracks problem size.
func (c config) saLib(n int) sa.Config {
	alpha := c.SA.Alpha
	if alpha == 0 {
		alpha = 1 / (0.2 * float64(n))
	}

	return sa.Config{
		InitialTemp:      c.SA.InitialTemp,
		FinalTemp:        c.SA.FinalTemp,
		Alpha:            alpha,
		NeighborsPerTemp: c.SA.NeighborsPerTemp,
		StallLimit:       c.SA.StallLimit,
	}
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file overlaying the built-in defaults")
		cities     = flag.Int("cities", 0, "override problem.cities")
		seed       = flag.Int64("seed", 0, "override run.seed (engine seeds derive from it)")
		outDir     = flag.String("out", "", "override run.out_dir")
		plots      = flag.Bool("plots", false, "render convergence and best-tour PNGs")
		benchMode  = flag.Bool("bench", false, "run the repeated-run harness instead of a single race")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *cities > 0 {
		cfg.Problem.Cities = *cities
	}
	if *seed != 0 {
		cfg.Run.Seed = *seed
	}
	if *outDir != "" {
		cfg.Run.OutDir = *outDir
	}
	if *plots {
		cfg.Run.Plots = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *benchMode {
		err = runBench(ctx, logger, cfg)
	} else {
		err = runRace(ctx, logger, cfg)
	}
	if err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}

// runRace steps both engines concurrently over one problem and compares the
// winners.
func runRace(ctx context.Context, logger *zap.Logger, cfg config) error {
	if err := os.MkdirAll(cfg.Run.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	prob, err := tsp.RandomProblem(cfg.Problem.Cities, cfg.Problem.Width, cfg.Problem.Height, tsp.NewRNG(cfg.Problem.Seed))
	if err != nil {
		return fmt.Errorf("generate problem: %w", err)
	}
	logger.Info("problem generated",
		zap.Int("cities", prob.N()),
		zap.Int64("problem_seed", cfg.Problem.Seed))

	// Independent deterministic streams per engine, derived from the run seed.
	base := tsp.NewRNG(cfg.Run.Seed)
	gaEng, err := ga.New(prob, cfg.gaLib(), tsp.DeriveRNG(base, 1))
	if err != nil {
		return fmt.Errorf("build ga engine: %w", err)
	}
	saEng, err := sa.New(prob, cfg.saLib(prob.N()), tsp.DeriveRNG(base, 2))
	if err != nil {
		return fmt.Errorf("build sa engine: %w", err)
	}

	progressPath := filepath.Join(cfg.Run.OutDir, "progress.csv")
	progressFile, err := os.Create(progressPath)
	if err != nil {
		return fmt.Errorf("create progress file: %w", err)
	}
	defer progressFile.Close()

	gaSink, err := bench.NewCSVSink(progressFile, "ga", true)
	if err != nil {
		return err
	}
	saSink := gaSink.WithLabel("sa")

	// In-memory convergence series for the optional plot, captured alongside
	// the CSV rows.
	var (
		seriesMu sync.Mutex
		series   = map[string]bench.Series{}
	)
	capture := func(name string, inner opt.Sink) opt.Sink {
		return opt.SinkFunc(func(step int, best float64) error {
			seriesMu.Lock()
			series[name] = append(series[name], best)
			seriesMu.Unlock()
			return inner.Append(step, best)
		})
	}

	var (
		wg     sync.WaitGroup
		gaBest tsp.Tour
		saBest tsp.Tour
		gaErr  error
		saErr  error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		gaBest, gaErr = gaEng.Solve(ctx, capture("ga", gaSink))
	}()
	go func() {
		defer wg.Done()
		saBest, saErr = saEng.Solve(ctx, capture("sa", saSink))
	}()
	wg.Wait()

	if err := gaSink.Flush(); err != nil {
		return err
	}
	for _, e := range []error{gaErr, saErr} {
		if e != nil && !errors.Is(e, context.Canceled) {
			return e
		}
	}

	gaSnap := gaEng.Snapshot()
	saSnap := saEng.Snapshot()
	logger.Info("ga finished",
		zap.Float64("best", gaBest.Length),
		zap.Int("generations", gaSnap.Generation),
		zap.String("phase", gaSnap.Phase.String()))
	logger.Info("sa finished",
		zap.Float64("best", saBest.Length),
		zap.Int("iterations", saSnap.Iterations),
		zap.Float64("final_temp", saSnap.Temperature))

	winner, winnerTour := "ga", gaBest
	if saBest.Length < gaBest.Length {
		winner, winnerTour = "sa", saBest
	}
	logger.Info("race finished",
		zap.String("winner", winner),
		zap.Float64("margin", absDiff(gaBest.Length, saBest.Length)),
		zap.String("progress_csv", progressPath))

	if !cfg.Run.Plots {
		return nil
	}

	convergencePath := filepath.Join(cfg.Run.OutDir, "convergence.png")
	if err := bench.SaveConvergence(convergencePath, "GA vs SA", series); err != nil {
		return err
	}
	tourPath := filepath.Join(cfg.Run.OutDir, "best_tour.png")
	title := fmt.Sprintf("%s best: %.2f", winner, winnerTour.Length)
	if err := bench.SaveTour(tourPath, title, prob, winnerTour); err != nil {
		return err
	}
	logger.Info("plots written",
		zap.String("convergence", convergencePath),
		zap.String("tour", tourPath))

	return nil
}

// runBench runs the repeated-run harness and writes records plus summaries.
func runBench(ctx context.Context, logger *zap.Logger, cfg config) error {
	if err := os.MkdirAll(cfg.Run.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	algos := []bench.Algorithm{
		{
			Name: "ga",
			New: func(p *tsp.Problem, seed int64) (opt.Engine, error) {
				return ga.New(p, cfg.gaLib(), tsp.NewRNG(seed))
			},
		},
		{
			Name: "sa",
			New: func(p *tsp.Problem, seed int64) (opt.Engine, error) {
				return sa.New(p, cfg.saLib(p.N()), tsp.NewRNG(seed))
			},
		},
	}

	runner := bench.Runner{
		Runs:     cfg.Run.BenchRuns,
		BaseSeed: cfg.Run.Seed,
		MaxSteps: cfg.Run.MaxSteps,
	}
	c := bench.Case{
		Cities:      cfg.Problem.Cities,
		Width:       cfg.Problem.Width,
		Height:      cfg.Problem.Height,
		ProblemSeed: cfg.Problem.Seed,
	}

	logger.Info("bench starting",
		zap.Int("runs", runner.Runs),
		zap.Int("cities", c.Cities))

	records, err := runner.RunCase(ctx, c, algos)
	if err != nil {
		return err
	}

	recordsPath := filepath.Join(cfg.Run.OutDir, "records.csv")
	rf, err := os.Create(recordsPath)
	if err != nil {
		return fmt.Errorf("create records file: %w", err)
	}
	defer rf.Close()
	if err := bench.WriteRecords(rf, records); err != nil {
		return err
	}

	summaries, err := bench.Summarize(records)
	if err != nil {
		return err
	}
	summaryPath := filepath.Join(cfg.Run.OutDir, "summary.csv")
	sf, err := os.Create(summaryPath)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer sf.Close()
	if err := bench.WriteSummaries(sf, summaries); err != nil {
		return err
	}

	for _, s := range summaries {
		logger.Info("bench summary",
			zap.String("algorithm", s.Algorithm),
			zap.Int("runs", s.Runs),
			zap.Float64("best_min", s.BestMin),
			zap.Float64("best_mean", s.BestMean),
			zap.Float64("best_stddev", s.BestStdDev),
			zap.Duration("mean_elapsed", s.MeanElapsed))
	}
	logger.Info("bench finished",
		zap.String("records_csv", recordsPath),
		zap.String("summary_csv", summaryPath))

	return nil
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
