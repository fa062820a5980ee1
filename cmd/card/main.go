package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alejandrodnm/betcard/config"
	"github.com/alejandrodnm/betcard/internal/adapters/notify"
	"github.com/alejandrodnm/betcard/internal/adapters/slate"
	"github.com/alejandrodnm/betcard/internal/adapters/storage"
	"github.com/alejandrodnm/betcard/internal/application/builder"
	"github.com/alejandrodnm/betcard/internal/selector"
	"github.com/alejandrodnm/betcard/internal/staking"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	once := flag.Bool("once", false, "build one card and exit")
	dryRun := flag.Bool("dry-run", false, "skip persistence (no SQLite writes)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	table := flag.Bool("table", false, "print full card tables (default: compact 1-line)")
	slatePath := flag.String("slate", "", "candidate slate file (overrides config)")
	bankrollPath := flag.String("bankroll", "", "bankroll snapshot file (overrides config)")
	mode := flag.String("mode", "", "staking mode: tiered|kelly (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *slatePath != "" {
		cfg.Slate.Candidates = *slatePath
	}
	if *bankrollPath != "" {
		cfg.Slate.Bankroll = *bankrollPath
	}
	if *mode != "" {
		cfg.Staking.Mode = *mode
	}
	setupLogger(cfg.Log)

	slog.Info("betcard starting",
		"config", *configPath,
		"slate", cfg.Slate.Candidates,
		"mode", cfg.Staking.Mode,
		"interval", cfg.RebuildInterval(),
		"once", *once,
		"dry_run", *dryRun,
	)

	provider := slate.NewFileProvider(cfg.Slate.Candidates, cfg.Slate.Bankroll)

	var store *storage.SQLiteStorage
	if !*dryRun {
		store, err = storage.NewSQLiteStorage(cfg.Storage.DSN)
		if err != nil {
			slog.Error("failed to open storage", "err", err, "dsn", cfg.Storage.DSN)
			os.Exit(1)
		}
		defer store.Close()
	}

	notifier := notify.NewConsole(*table)

	buildCfg := builder.Config{
		Selector: selectorConfig(cfg),
		Sizer: staking.Config{
			Mode:            staking.Mode(cfg.Staking.Mode),
			UnitPercent:     cfg.Staking.UnitPercent,
			KellyMultiplier: cfg.Staking.KellyMultiplier,
			KellyMaxPercent: cfg.Staking.KellyMaxPercent,
			AltFloorCents:   cfg.Staking.AltFloorCents,
		},
		Interval: cfg.RebuildInterval(),
		Once:     *once,
	}

	var b *builder.Builder
	if store != nil {
		b = builder.New(buildCfg, provider, store, notifier)
	} else {
		b = builder.New(buildCfg, provider, nil, notifier)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := b.Run(ctx); err != nil {
		slog.Error("builder exited with error", "err", err)
		os.Exit(1)
	}

	slog.Info("betcard stopped cleanly")
}

// selectorConfig arma la configuración de selección, incluida la ventana de
// kickoff relativa al arranque si está configurada.
func selectorConfig(cfg *config.Config) selector.Config {
	sel := selector.Config{
		SlotCap:      cfg.Card.SlotCap,
		JuiceCeiling: cfg.Card.JuiceCeiling,
		Floors:       cfg.FloorTable(),
	}
	if cfg.Card.WindowHours > 0 {
		now := time.Now().UTC()
		sel.WindowFrom = now
		sel.WindowTo = now.Add(time.Duration(cfg.Card.WindowHours * float64(time.Hour)))
	}
	return sel
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
