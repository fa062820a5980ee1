package domain

import "time"

// Sport identifica el deporte de un candidato.
type Sport string

const (
	SportBasketball      Sport = "basketball"
	SportFootballPro     Sport = "football-pro"
	SportFootballCollege Sport = "football-college"
	SportHockey          Sport = "hockey"
	SportBaseball        Sport = "baseball"
)

// MarketType es el tipo de mercado apostado.
type MarketType string

const (
	MarketMoneyline MarketType = "moneyline"
	MarketSpread    MarketType = "spread"
	MarketTotal     MarketType = "total"
)

// Decision es el veredicto del analista externo sobre un candidato.
type Decision string

const (
	DecisionPlayable Decision = "PLAYABLE"
	DecisionPass     Decision = "PASS"
)

// Confidence es el nivel de confianza del veredicto.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// VenueQuote es la cotización retail (soft) de un candidato en una casa concreta.
// Price llega como string porque el feed upstream a veces lo trae vacío o
// malformado — se parsea con ParseAmerican (fallback -110).
type VenueQuote struct {
	Venue string
	Line  float64
	Price string // odds americanos en crudo, ej. "-110", "+145"
}

// Candidate es una oportunidad analizada: un partido/mercado con línea sharp
// de referencia, cotizaciones retail, y el veredicto ya calculado por el
// colaborador de análisis. El core nunca muta el veredicto.
type Candidate struct {
	ID      string
	Event   string // ej. "LAL @ BOS"
	Sport   Sport
	Market  MarketType
	Side    string // equipo, "Over" o "Under"
	Kickoff time.Time

	// Referencia sharp
	RefLine  float64
	RefPrice string // odds americanos en crudo

	// Veredicto externo (read-only para el core)
	Decision       Decision
	Confidence     Confidence
	LinePoints     float64 // mejora en puntos vs la línea sharp
	PriceCents     float64 // mejora en cents vs el precio sharp
	WinProbability float64 // 0–1 estimada; 0 = desconocida
	BestVenue      string
	Quotes         []VenueQuote
}

// Quote devuelve la cotización del candidato en la casa dada.
func (c Candidate) Quote(venue string) (VenueQuote, bool) {
	for _, q := range c.Quotes {
		if q.Venue == venue {
			return q, true
		}
	}
	return VenueQuote{}, false
}

// BestQuote devuelve la cotización de la casa con mejor precio según el
// veredicto. Falso si BestVenue no aparece entre las quotes.
func (c Candidate) BestQuote() (VenueQuote, bool) {
	return c.Quote(c.BestVenue)
}

// IsTotal devuelve true si el candidato es un mercado de totales.
func (c Candidate) IsTotal() bool {
	return c.Market == MarketTotal
}

// BacksFavorite clasifica un pick de spread/moneyline: true si respalda al
// favorito (spread de referencia negativo, o precio de referencia negativo
// en moneyline). Totales devuelven siempre false.
func (c Candidate) BacksFavorite() bool {
	switch c.Market {
	case MarketSpread:
		return c.RefLine < 0
	case MarketMoneyline:
		odds, ok := ParseAmerican(c.RefPrice)
		return ok && odds < 0
	default:
		return false
	}
}

// VenueBalance es el saldo disponible en una casa, según el snapshot del
// ledger externo. El core lo consume read-only; la reserva por pick se hace
// sobre una copia run-scoped (staking.Ledger).
type VenueBalance struct {
	Venue   string
	Balance float64
}
