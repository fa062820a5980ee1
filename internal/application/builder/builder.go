// Package builder orquesta un build de carta completo: pool → selección →
// sizing → análisis de concentración → proyección de resultados.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/alejandrodnm/betcard/internal/domain"
	"github.com/alejandrodnm/betcard/internal/ports"
	"github.com/alejandrodnm/betcard/internal/risk"
	"github.com/alejandrodnm/betcard/internal/selector"
	"github.com/alejandrodnm/betcard/internal/staking"
)

const defaultInterval = 5 * time.Minute

// Config contiene la configuración completa de un Builder.
type Config struct {
	Selector selector.Config
	Sizer    staking.Config
	// Interval es la cadencia del loop de rebuild.
	Interval time.Duration
	// Once: construir una carta y salir.
	Once bool
}

// DefaultConfig devuelve una configuración sensata.
func DefaultConfig() Config {
	return Config{
		Selector: selector.DefaultConfig(),
		Sizer:    staking.DefaultConfig(),
		Interval: defaultInterval,
	}
}

// Builder construye la carta del día contra un snapshot de slate y bankroll.
type Builder struct {
	cfg      Config
	provider ports.SlateProvider
	store    ports.Storage // nil = sin persistencia (dry run)
	notifier ports.Notifier

	selector *selector.Selector
	sizer    *staking.Sizer

	// mu serializa builds concurrentes: dos pases contra el mismo snapshot
	// de bankroll sin lock contarían dos veces los mismos fondos.
	mu sync.Mutex
	// limiter pone un suelo al tiempo entre builds — el refresh periódico
	// y el trigger manual no pueden atropellarse.
	limiter *rate.Limiter
}

// New crea un Builder con todas las dependencias inyectadas.
func New(cfg Config, provider ports.SlateProvider, store ports.Storage, notifier ports.Notifier) *Builder {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	return &Builder{
		cfg:      cfg,
		provider: provider,
		store:    store,
		notifier: notifier,
		selector: selector.New(cfg.Selector),
		sizer:    staking.NewSizer(cfg.Sizer),
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Run ejecuta el loop de builds hasta que el contexto se cancele.
// Con cfg.Once activo construye una carta y devuelve.
func (b *Builder) Run(ctx context.Context) error {
	slog.Info("builder starting", "interval", b.cfg.Interval, "once", b.cfg.Once)

	if err := b.runCycle(ctx); err != nil {
		slog.Error("build cycle failed", "err", err)
		if b.cfg.Once {
			return err
		}
	}
	if b.cfg.Once {
		return nil
	}

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("builder stopped")
			return nil
		case <-ticker.C:
			if err := b.runCycle(ctx); err != nil {
				slog.Error("build cycle failed", "err", err)
			}
		}
	}
}

// runCycle construye, notifica y persiste una carta.
func (b *Builder) runCycle(ctx context.Context) error {
	start := time.Now()

	card, err := b.BuildOnce(ctx)
	if err != nil {
		return err
	}

	if err := b.notifier.Notify(ctx, card); err != nil {
		slog.Warn("notifier error", "err", err)
	}
	if b.store != nil {
		if err := b.store.SaveCard(ctx, card); err != nil {
			slog.Warn("storage error", "err", err)
		}
	}

	slog.Info("build cycle complete",
		"picked", card.Picked,
		"skipped", card.Skipped,
		"staked", card.TotalStaked,
		"warnings", len(card.Warnings),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}

// BuildOnce ejecuta exactamente un build y devuelve la carta. Serializado:
// un build a la vez, con un suelo de un segundo entre builds consecutivos.
func (b *Builder) BuildOnce(ctx context.Context) (domain.Card, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.limiter.Wait(ctx); err != nil {
		return domain.Card{}, fmt.Errorf("builder.BuildOnce: throttle: %w", err)
	}

	pool, err := b.provider.Candidates(ctx)
	if err != nil {
		return domain.Card{}, fmt.Errorf("builder.BuildOnce: fetch slate: %w", err)
	}
	balances, err := b.provider.Balances(ctx)
	if err != nil {
		return domain.Card{}, fmt.Errorf("builder.BuildOnce: fetch bankroll: %w", err)
	}

	return b.build(pool, balances), nil
}

// build es el pipeline puro: con el mismo pool y los mismos saldos produce
// la misma carta (salvo RunID y BuiltAt).
func (b *Builder) build(pool []domain.Candidate, balances []domain.VenueBalance) domain.Card {
	sel := b.selector.Select(pool)

	ledger := staking.NewLedger(balances)
	b.sizer.SizeAll(sel.Picks, ledger)

	projection := risk.Project(sel.Picks)

	return domain.Card{
		RunID:       uuid.New().String(),
		BuiltAt:     time.Now().UTC(),
		Picks:       sel.Picks,
		Picked:      sel.Picked,
		Skipped:     sel.Skipped,
		SkipReasons: sel.Reasons,
		Warnings:    risk.AnalyzeConcentration(sel.Picks),
		Scenarios:   projection.Scenarios,
		TotalStaked: projection.TotalStaked,
		BestCase:    projection.BestCase,
		WorstCase:   projection.WorstCase,
	}
}
