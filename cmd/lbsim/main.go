package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/udisondev/lbsim/internal/config"
	"github.com/udisondev/lbsim/internal/data"
	"github.com/udisondev/lbsim/internal/game/sim"
	"github.com/udisondev/lbsim/internal/model"
	"github.com/udisondev/lbsim/internal/report"
)

const DefaultConfigPath = "config/lbsim.yaml"

// Modes
const (
	ModeSingle = "single"
	ModeQuick  = "quick"
	ModeDetail = "detail"
)

var errUsage = errors.New("usage: lbsim [flags] <quick|detail|single>")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("lbsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", DefaultConfigPath, "simulator config (YAML)")
	scenarioPath := fs.String("scenario", "", "scenario file (YAML), defaults apply when empty")
	tablesPath := fs.String("tables", "", "lookup table overrides (YAML)")
	seed := fs.Uint64("seed", 0, "base seed, 0 picks a fresh one")
	trials := fs.Int("trials", 0, "trials per batch")
	workers := fs.Int("workers", 0, "parallel workers, 0 = NumCPU")
	csvPath := fs.String("csv", "", "also write the quick grid as CSV")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	mode := fs.Arg(0)

	// Load config FIRST to determine log level
	cfgPath := *configPath
	if p := os.Getenv("LBSIM_CONFIG"); p != "" && !flagSet(fs, "config") {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags override env and file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scenario":
			cfg.ScenarioPath = *scenarioPath
		case "tables":
			cfg.TablesPath = *tablesPath
		case "seed":
			cfg.Seed = *seed
		case "trials":
			cfg.Trials = *trials
		case "workers":
			cfg.Workers = *workers
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	tables, err := data.LoadTables(cfg.TablesPath)
	if err != nil {
		return fmt.Errorf("loading tables: %w", err)
	}
	sf, err := config.LoadScenario(cfg.ScenarioPath)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	sc, err := sf.ToScenario(tables.Constants.BuffLevelPercent)
	if err != nil {
		return fmt.Errorf("building scenario: %w", err)
	}
	warnUnverified(sc, tables)

	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	fingerprint, err := config.Fingerprint(sc, tables, cfg.Seed)
	if err != nil {
		return fmt.Errorf("fingerprinting scenario: %w", err)
	}
	slog.Info("lbsim starting",
		"mode", mode,
		"seed", cfg.Seed,
		"trials", cfg.Trials,
		"fingerprint", fingerprint)

	runner := sim.NewRunner(sim.Options{
		Tables:    tables,
		Workers:   cfg.Workers,
		ChunkSize: cfg.ChunkSize,
		Seed:      cfg.Seed,
	})
	pr, err := report.NewPrinter(stdout, cfg.Locale)
	if err != nil {
		return err
	}

	switch mode {
	case ModeSingle:
		samples, err := runner.Run(ctx, sc, 1)
		if err != nil {
			return err
		}
		if err := pr.Header(mode, fingerprint, cfg.Seed, 1); err != nil {
			return err
		}
		return pr.Damage(samples[0], sc.Stats.TargetHP)

	case ModeQuick:
		grid, err := sim.QuickComparison(ctx, runner, sc, cfg.Trials)
		if err != nil {
			return fmt.Errorf("quick comparison: %w", err)
		}
		if err := pr.Header(mode, fingerprint, cfg.Seed, cfg.Trials); err != nil {
			return err
		}
		if err := pr.Grid(grid); err != nil {
			return err
		}
		if *csvPath != "" {
			return writeCSV(*csvPath, grid)
		}
		return nil

	case ModeDetail:
		res, err := sim.Detail(ctx, runner, sc, cfg.Trials)
		if err != nil {
			return fmt.Errorf("detail run: %w", err)
		}
		if err := pr.Header(mode, fingerprint, cfg.Seed, cfg.Trials); err != nil {
			return err
		}
		if err := pr.Summary(res); err != nil {
			return err
		}
		if _, err := io.WriteString(stdout, "\n"); err != nil {
			return err
		}
		return pr.Histogram(res.Histogram)

	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, mode)
	}
}

func writeCSV(path string, grid sim.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := report.WriteGridCSV(f, grid); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	slog.Info("grid written", "path", path)
	return nil
}

// warnUnverified flags provisional table values the scenario depends on.
func warnUnverified(sc model.Scenario, t *data.Tables) {
	if t.IsUnverified("skill_effects", sc.Attack.Subtype.String()) {
		slog.Warn("skill effect is provisional", "subtype", sc.Attack.Subtype.String())
	}
}

func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
