// Package staking calcula el stake recomendado por pick: unidades fijas por
// confianza o Kelly fraccional, siempre acotado por los fondos disponibles
// en la casa elegida (con sustitución de casa si la primera no llega).
package staking

import (
	"log/slog"
	"math"
	"sort"

	"github.com/alejandrodnm/betcard/internal/domain"
)

// Mode selecciona el modo de sizing.
type Mode string

const (
	ModeTiered Mode = "tiered"
	ModeKelly  Mode = "kelly"
)

const (
	defaultUnitPercent     = 2.0
	defaultKellyMultiplier = 0.25
	defaultKellyMaxPercent = 5.0
	defaultAltFloorCents   = 10.0
)

// Multiplicadores de unidad por confianza.
const (
	unitsHigh   = 1.5
	unitsMedium = 1.0
	unitsLow    = 0.5
)

// Config contiene los parámetros de sizing.
type Config struct {
	Mode Mode
	// UnitPercent: una unidad = bankroll × UnitPercent / 100 (modo tiered).
	UnitPercent float64
	// KellyMultiplier escala el Kelly completo (0.25 / 0.5 / 1.0).
	KellyMultiplier float64
	// KellyMaxPercent acota el stake Kelly a este % del bankroll.
	KellyMaxPercent float64
	// AltFloorCents: una casa alternativa puede ser como mucho esto de
	// cents peor que el best price antes de descartarla — protege contra
	// aceptar en silencio un número mucho peor.
	AltFloorCents float64
}

// DefaultConfig devuelve una configuración de sizing conservadora.
func DefaultConfig() Config {
	return Config{
		Mode:            ModeTiered,
		UnitPercent:     defaultUnitPercent,
		KellyMultiplier: defaultKellyMultiplier,
		KellyMaxPercent: defaultKellyMaxPercent,
		AltFloorCents:   defaultAltFloorCents,
	}
}

// Sizer asigna stakes contra un Ledger run-scoped.
type Sizer struct {
	cfg Config
}

// NewSizer crea un Sizer con la configuración dada.
func NewSizer(cfg Config) *Sizer {
	if cfg.Mode == "" {
		cfg.Mode = ModeTiered
	}
	if cfg.UnitPercent <= 0 {
		cfg.UnitPercent = defaultUnitPercent
	}
	if cfg.KellyMultiplier <= 0 {
		cfg.KellyMultiplier = defaultKellyMultiplier
	}
	if cfg.KellyMaxPercent <= 0 {
		cfg.KellyMaxPercent = defaultKellyMaxPercent
	}
	if cfg.AltFloorCents <= 0 {
		cfg.AltFloorCents = defaultAltFloorCents
	}
	return &Sizer{cfg: cfg}
}

// SizeAll asigna stake a cada pick en orden de slot, reservando fondos en el
// ledger entre picks. El orden importa: los slots altos tienen prioridad
// sobre los fondos.
func (s *Sizer) SizeAll(picks []domain.Pick, ledger *Ledger) {
	for i := range picks {
		picks[i].Stake = s.Size(picks[i].Candidate, ledger)
	}
}

// Size calcula el stake de un candidato y reserva los fondos elegidos.
// Nunca devuelve un importe negativo ni usa fondos que no existen.
func (s *Sizer) Size(c domain.Candidate, ledger *Ledger) domain.Stake {
	bankroll := ledger.Bankroll()

	var stake domain.Stake
	switch s.cfg.Mode {
	case ModeKelly:
		stake = s.kellyStake(c, bankroll)
	default:
		stake = s.tieredStake(c, bankroll)
	}
	if stake.Amount <= 0 {
		return stake
	}

	return s.fund(c, stake, ledger)
}

// tieredStake: una unidad por confianza MEDIUM, media por LOW, unidad y
// media por HIGH.
func (s *Sizer) tieredStake(c domain.Candidate, bankroll float64) domain.Stake {
	unit := bankroll * s.cfg.UnitPercent / 100.0

	units := unitsMedium
	switch c.Confidence {
	case domain.ConfidenceHigh:
		units = unitsHigh
	case domain.ConfidenceLow:
		units = unitsLow
	}

	return domain.Stake{
		Amount: round2(unit * units),
		Units:  units,
	}
}

// kellyStake: f* = (p·d − 1) / (d − 1), escalado por el multiplicador
// fraccional y acotado a KellyMaxPercent del bankroll. Sin edge (f* ≤ 0) el
// stake es cero, nunca negativo.
func (s *Sizer) kellyStake(c domain.Candidate, bankroll float64) domain.Stake {
	quote, ok := c.BestQuote()
	if !ok {
		return domain.Stake{Reason: "insufficient data"}
	}
	odds, ok := domain.ParseAmerican(quote.Price)
	if !ok {
		return domain.Stake{Reason: "insufficient data"}
	}
	p := c.WinProbability
	if p <= 0 || p >= 1 {
		return domain.Stake{Reason: "insufficient data"}
	}

	d := domain.ToDecimal(odds)
	full := (p*d - 1.0) / (d - 1.0)
	if full <= 0 {
		return domain.Stake{Reason: "no edge"}
	}

	applied := full * s.cfg.KellyMultiplier
	if maxFrac := s.cfg.KellyMaxPercent / 100.0; applied > maxFrac {
		applied = maxFrac
	}

	return domain.Stake{
		Amount:        round2(bankroll * applied),
		KellyFraction: applied,
	}
}

// fund elige la casa y reserva fondos: primero el BestVenue; si no llega,
// la mejor alternativa con fondos completos y precio dentro del floor; si
// tampoco, funding parcial donde quede algo — marcado Capped.
func (s *Sizer) fund(c domain.Candidate, stake domain.Stake, ledger *Ledger) domain.Stake {
	best, ok := c.BestQuote()
	bestOdds := domain.DefaultPrice
	if ok {
		bestOdds = domain.ParseAmericanOrDefault(best.Price)
	}

	// 1. Primera opción: el best venue con fondos completos.
	if ok && ledger.Reserve(best.Venue, stake.Amount) {
		stake.Venue = best.Venue
		stake.Odds = bestOdds
		return stake
	}

	// 2. Alternativas con fondos completos, dentro del floor de precio,
	// mejor precio primero.
	alts := s.alternates(c, bestOdds)
	for _, alt := range alts {
		if ledger.Reserve(alt.venue, stake.Amount) {
			slog.Debug("stake moved to fallback venue",
				"id", c.ID, "from", c.BestVenue, "to", alt.venue, "odds", alt.odds)
			stake.Venue = alt.venue
			stake.Odds = alt.odds
			return stake
		}
	}

	// 3. Funding parcial: la casa con más saldo restante entre las
	// aceptables por precio (best venue incluido).
	type option struct {
		venue string
		odds  int
	}
	options := []option{}
	if ok {
		options = append(options, option{best.Venue, bestOdds})
	}
	for _, alt := range alts {
		options = append(options, option{alt.venue, alt.odds})
	}

	partialVenue, partialOdds, partialAvail := "", 0, 0.0
	for _, o := range options {
		if avail := ledger.Available(o.venue); avail > partialAvail {
			partialVenue, partialOdds, partialAvail = o.venue, o.odds, avail
		}
	}
	if partialVenue == "" {
		stake.Amount = 0
		stake.Capped = true
		stake.Reason = "no funds"
		return stake
	}

	// Floor, no round: redondear hacia arriba reservaría céntimos que la
	// casa no tiene.
	amount := math.Floor(partialAvail*100) / 100
	if amount <= 0 {
		stake.Amount = 0
		stake.Capped = true
		stake.Reason = "no funds"
		return stake
	}
	ledger.Reserve(partialVenue, amount)
	slog.Warn("stake partially funded",
		"id", c.ID, "venue", partialVenue, "wanted", stake.Amount, "funded", amount)
	stake.Amount = amount
	stake.Venue = partialVenue
	stake.Odds = partialOdds
	stake.Capped = true
	return stake
}

type alternate struct {
	venue string
	odds  int
}

// alternates devuelve las casas distintas del BestVenue cuyo precio parsea
// y no es más de AltFloorCents peor que el best price, ordenadas mejor
// precio primero (empate → nombre de casa ascendente, por determinismo).
func (s *Sizer) alternates(c domain.Candidate, bestOdds int) []alternate {
	var alts []alternate
	for _, q := range c.Quotes {
		if q.Venue == c.BestVenue {
			continue
		}
		odds, ok := domain.ParseAmerican(q.Price)
		if !ok {
			continue
		}
		if domain.CentsBetween(odds, bestOdds) < -s.cfg.AltFloorCents {
			continue
		}
		alts = append(alts, alternate{venue: q.Venue, odds: odds})
	}
	sort.Slice(alts, func(i, j int) bool {
		di, dj := domain.ToDecimal(alts[i].odds), domain.ToDecimal(alts[j].odds)
		if di != dj {
			return di > dj
		}
		return alts[i].venue < alts[j].venue
	})
	return alts
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
