// Package selector implementa la selección de la carta diaria: elegibilidad,
// filtro de calidad, ranking determinista y asignación de slots.
package selector

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/alejandrodnm/betcard/internal/domain"
)

const (
	defaultSlotCap      = 5
	defaultJuiceCeiling = 160
)

// Config contiene los parámetros de selección.
type Config struct {
	// SlotCap es el máximo de picks en la carta del día.
	SlotCap int
	// JuiceCeiling veta favoritos cotizados más allá de -JuiceCeiling
	// (ej. 160 → -170 queda fuera, -160 entra). Es un veto descalificante,
	// no una penalización de ranking.
	JuiceCeiling int
	// WindowFrom / WindowTo restringen el kickoff si no son cero.
	WindowFrom time.Time
	WindowTo   time.Time
	// Floors es la tabla de floors de puntos por (deporte, mercado).
	Floors domain.FloorTable
}

// DefaultConfig devuelve una configuración de selección conservadora.
func DefaultConfig() Config {
	return Config{
		SlotCap:      defaultSlotCap,
		JuiceCeiling: defaultJuiceCeiling,
		Floors:       domain.DefaultFloorTable(),
	}
}

// Result es la asignación ordenada de slots más los diagnósticos del run.
type Result struct {
	Picks   []domain.Pick
	Picked  int
	Skipped int // pasaron elegibilidad pero su edge quedó en NONE
	Reasons []string
}

// Selector filtra, rankea y asigna slots sobre un pool de candidatos.
type Selector struct {
	cfg Config
}

// New crea un Selector con la configuración dada.
func New(cfg Config) *Selector {
	if cfg.SlotCap <= 0 {
		cfg.SlotCap = defaultSlotCap
	}
	if cfg.JuiceCeiling <= 0 {
		cfg.JuiceCeiling = defaultJuiceCeiling
	}
	if len(cfg.Floors.Premium) == 0 && len(cfg.Floors.Standard) == 0 {
		cfg.Floors = domain.DefaultFloorTable()
	}
	return &Selector{cfg: cfg}
}

// Select ejecuta un pase completo sobre el pool. Es idempotente: el mismo
// pool produce siempre los mismos slots (sin aleatoriedad ni reloj más allá
// de la ventana configurada).
func (s *Selector) Select(pool []domain.Candidate) Result {
	var res Result
	var ranked []domain.Pick

	for _, c := range pool {
		if !s.eligible(c) {
			continue
		}

		tier := domain.ClassifyEdge(s.cfg.Floors, c.Sport, c.Market, c.Confidence, c.LinePoints, c.PriceCents)
		if tier == domain.EdgeNone {
			res.Skipped++
			res.Reasons = append(res.Reasons, skipReason(c))
			continue
		}

		ranked = append(ranked, domain.Pick{Candidate: c, Tier: tier})
	}

	sortRanked(ranked)

	if len(ranked) > s.cfg.SlotCap {
		ranked = ranked[:s.cfg.SlotCap]
	}
	for i := range ranked {
		ranked[i].Slot = i + 1
	}

	res.Picks = ranked
	res.Picked = len(ranked)
	return res
}

// eligible aplica el filtro duro previo al ranking: veredicto PLAYABLE,
// kickoff dentro de la ventana, y un best price resolvable que no supere el
// techo de juice.
func (s *Selector) eligible(c domain.Candidate) bool {
	if c.Decision != domain.DecisionPlayable {
		return false
	}
	if !s.cfg.WindowFrom.IsZero() && c.Kickoff.Before(s.cfg.WindowFrom) {
		return false
	}
	if !s.cfg.WindowTo.IsZero() && c.Kickoff.After(s.cfg.WindowTo) {
		return false
	}

	quote, ok := c.BestQuote()
	if !ok {
		slog.Debug("candidate without resolvable best venue", "id", c.ID, "venue", c.BestVenue)
		return false
	}
	odds, ok := domain.ParseAmerican(quote.Price)
	if !ok {
		slog.Debug("candidate with unparseable best price", "id", c.ID, "price", quote.Price)
		return false
	}
	if odds < -s.cfg.JuiceCeiling {
		slog.Debug("candidate vetoed by juice ceiling", "id", c.ID, "odds", odds, "ceiling", -s.cfg.JuiceCeiling)
		return false
	}
	return true
}

// sortRanked ordena por tier desc, puntos desc, cents desc, id asc. El
// tie-break por id es obligatorio: edges casi iguales en float tienen que
// producir un orden reproducible.
func sortRanked(picks []domain.Pick) {
	sort.Slice(picks, func(i, j int) bool {
		a, b := picks[i], picks[j]
		if a.Tier != b.Tier {
			return a.Tier > b.Tier
		}
		if a.LinePoints != b.LinePoints {
			return a.LinePoints > b.LinePoints
		}
		if a.PriceCents != b.PriceCents {
			return a.PriceCents > b.PriceCents
		}
		return a.ID < b.ID
	})
}

// skipReason arma la explicación legible de un skip por calidad.
func skipReason(c domain.Candidate) string {
	return fmt.Sprintf("%s %s (%s): %+.1f pts / %+.0f¢ — below edge floor",
		c.Event, c.Market, c.Side, c.LinePoints, c.PriceCents)
}
