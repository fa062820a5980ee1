package storage

// sqlite.go — histórico de cartas construidas.
//
// Estrategia:
//   - `runs`: una fila por build (contadores, total apostado, best/worst).
//   - `picks`: una fila por pick con slot — la foto exacta de la carta.
//   - Warnings y escenarios NO se persisten: son derivados y se regeneran
//     desde sus inputs en cada análisis.
//   - Prune automático al arrancar: runs (y sus picks) > 90 días.

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/betcard/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
-- Una fila por build de carta
CREATE TABLE IF NOT EXISTS runs (
    run_id       TEXT PRIMARY KEY,
    built_at     DATETIME NOT NULL,
    picked       INTEGER  NOT NULL DEFAULT 0,
    skipped      INTEGER  NOT NULL DEFAULT 0,
    total_staked REAL     NOT NULL DEFAULT 0,
    best_case    REAL     NOT NULL DEFAULT 0,
    worst_case   REAL     NOT NULL DEFAULT 0,
    warnings     INTEGER  NOT NULL DEFAULT 0
);

-- Una fila por pick asignado a slot
CREATE TABLE IF NOT EXISTS picks (
    run_id       TEXT    NOT NULL,
    slot         INTEGER NOT NULL,
    candidate_id TEXT    NOT NULL,
    event        TEXT,
    sport        TEXT,
    market       TEXT,
    side         TEXT,
    kickoff      DATETIME,
    tier         TEXT,
    line_points  REAL NOT NULL DEFAULT 0,
    price_cents  REAL NOT NULL DEFAULT 0,
    stake        REAL NOT NULL DEFAULT 0,
    venue        TEXT,
    odds         INTEGER NOT NULL DEFAULT 0,
    capped       INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (run_id, slot)
);

CREATE INDEX IF NOT EXISTS idx_runs_at    ON runs(built_at DESC);
CREATE INDEX IF NOT EXISTS idx_picks_run  ON picks(run_id);
`

// retentionRuns: el histórico sirve para ver cómo se distribuyó la carta en
// semanas recientes; a 90 días una carta ya no informa nada.
const retentionRuns = 90 * 24 * time.Hour

// SQLiteStorage implementa ports.Storage usando SQLite (pure Go, sin CGo).
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada, aplica
// el schema y limpia runs antiguos.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	s := &SQLiteStorage{db: db}
	s.pruneOld(context.Background())
	return s, nil
}

// SaveCard persiste el run y sus picks en una transacción.
func (s *SQLiteStorage) SaveCard(ctx context.Context, card domain.Card) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveCard: begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, built_at, picked, skipped, total_staked, best_case, worst_case, warnings)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		card.RunID, card.BuiltAt.UTC(), card.Picked, card.Skipped,
		card.TotalStaked, card.BestCase, card.WorstCase, len(card.Warnings),
	); err != nil {
		return fmt.Errorf("storage.SaveCard: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO picks
			(run_id, slot, candidate_id, event, sport, market, side, kickoff,
			 tier, line_points, price_cents, stake, venue, odds, capped)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("storage.SaveCard: prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range card.Picks {
		capped := 0
		if p.Stake.Capped {
			capped = 1
		}
		if _, err := stmt.ExecContext(ctx,
			card.RunID, p.Slot, p.ID, p.Event, string(p.Sport), string(p.Market),
			p.Side, p.Kickoff.UTC(), p.Tier.String(), p.LinePoints, p.PriceCents,
			p.Stake.Amount, p.Stake.Venue, p.Stake.Odds, capped,
		); err != nil {
			return fmt.Errorf("storage.SaveCard: insert pick %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.SaveCard: commit: %w", err)
	}
	return nil
}

// GetHistory devuelve los runs del rango dado, más recientes primero, con
// sus picks en orden de slot. Warnings y escenarios no se reconstruyen.
func (s *SQLiteStorage) GetHistory(ctx context.Context, from, to time.Time) ([]domain.Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, built_at, picked, skipped, total_staked, best_case, worst_case
		FROM runs
		WHERE built_at BETWEEN ? AND ?
		ORDER BY built_at DESC
	`, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("storage.GetHistory: query runs: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var card domain.Card
		var builtAt string
		if err := rows.Scan(&card.RunID, &builtAt, &card.Picked, &card.Skipped,
			&card.TotalStaked, &card.BestCase, &card.WorstCase); err != nil {
			return nil, fmt.Errorf("storage.GetHistory: scan run: %w", err)
		}
		card.BuiltAt, _ = time.Parse(time.RFC3339, builtAt)
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage.GetHistory: iterate runs: %w", err)
	}

	for i := range cards {
		picks, err := s.loadPicks(ctx, cards[i].RunID)
		if err != nil {
			return nil, err
		}
		cards[i].Picks = picks
	}
	return cards, nil
}

// loadPicks carga los picks de un run en orden de slot.
func (s *SQLiteStorage) loadPicks(ctx context.Context, runID string) ([]domain.Pick, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slot, candidate_id, event, sport, market, side, kickoff,
		       tier, line_points, price_cents, stake, venue, odds, capped
		FROM picks
		WHERE run_id = ?
		ORDER BY slot ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("storage.loadPicks: query: %w", err)
	}
	defer rows.Close()

	var picks []domain.Pick
	for rows.Next() {
		var p domain.Pick
		var sport, market, tier, kickoff string
		var capped int
		if err := rows.Scan(&p.Slot, &p.ID, &p.Event, &sport, &market, &p.Side,
			&kickoff, &tier, &p.LinePoints, &p.PriceCents,
			&p.Stake.Amount, &p.Stake.Venue, &p.Stake.Odds, &capped); err != nil {
			return nil, fmt.Errorf("storage.loadPicks: scan: %w", err)
		}
		p.Sport = domain.Sport(sport)
		p.Market = domain.MarketType(market)
		p.Kickoff, _ = time.Parse(time.RFC3339, kickoff)
		p.Tier = parseTier(tier)
		p.Stake.Capped = capped == 1
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

// pruneOld borra runs (y sus picks) fuera de la retención. Fallos aquí no
// son fatales: solo crece la base.
func (s *SQLiteStorage) pruneOld(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-retentionRuns)
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM picks WHERE run_id IN (SELECT run_id FROM runs WHERE built_at < ?)`, cutoff); err != nil {
		slog.Warn("storage: prune picks failed", "err", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE built_at < ?`, cutoff); err != nil {
		slog.Warn("storage: prune runs failed", "err", err)
	}
}

// Close cierra la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func parseTier(s string) domain.EdgeTier {
	switch s {
	case "PREMIUM":
		return domain.EdgePremium
	case "STANDARD":
		return domain.EdgeStandard
	default:
		return domain.EdgeNone
	}
}
