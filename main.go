package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"runner/internal/config"
	"runner/internal/export"
	"runner/internal/service"
	"runner/internal/store"
	"runner/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	distance string
	current  string
	target   string
	days     int
	output   string
	print    bool

	set map[string]bool // flags given on the command line
}

func parseFlags(args []string) (options, error) {
	o := options{set: make(map[string]bool)}
	fs := flag.NewFlagSet("runner", flag.ContinueOnError)
	fs.StringVar(&o.distance, "distance", "", "race distance: 5k, 10k, half or full")
	fs.StringVar(&o.current, "current", "", "current pace per km, e.g. 6:00")
	fs.StringVar(&o.target, "target", "", "target pace per km, e.g. 5:30")
	fs.IntVar(&o.days, "days", 0, "training days per week (3-6, out of range values are clamped)")
	fs.StringVar(&o.output, "o", "", "export the plan to this file (.json .yaml .txt .pdf .xlsx) and exit")
	fs.BoolVar(&o.print, "print", false, "print the plan as text and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overrides config defaults with any flags that were set
func (o options) apply(d *config.DefaultsConfig) {
	if o.set["distance"] {
		d.Distance = o.distance
	}
	if o.set["current"] {
		d.CurrentPace = o.current
	}
	if o.set["target"] {
		d.TargetPace = o.target
	}
	if o.set["days"] {
		d.TrainingDays = o.days
	}
}

func run() error {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closeLog()

	// Open history database
	var db *store.DB
	if cfg.HistoryEnabled() {
		db, err = store.Open()
		if err != nil {
			logger.Warn("plan history unavailable", "error", err)
			db = nil
		} else {
			defer db.Close()
		}
	}

	svc := service.NewPlanService(db, logger, cfg.History.Limit)
	opts.apply(&cfg.Defaults)

	if opts.output != "" || opts.print {
		return runOnce(ctx, svc, cfg.Defaults, opts)
	}

	// Launch TUI
	app := tui.NewApp(svc, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// runOnce generates a single plan from flags and config, then exports or prints it
func runOnce(ctx context.Context, svc *service.PlanService, d config.DefaultsConfig, opts options) error {
	res, err := svc.Generate(ctx, service.Request{
		Distance:     d.Distance,
		CurrentPace:  d.CurrentPace,
		TargetPace:   d.TargetPace,
		TrainingDays: d.TrainingDays,
	})
	if err != nil {
		return fmt.Errorf("generating plan: %w", err)
	}

	if opts.output != "" {
		if err := svc.Export(res.Plan, opts.output); err != nil {
			return err
		}
		fmt.Printf("Plan written to %s\n", opts.output)
	}

	if opts.print {
		return export.WriteText(os.Stdout, res.Plan)
	}
	return nil
}

// newLogger writes to the configured log file; stdout belongs to the TUI
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}

	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
