package domain

import "time"

// Stake es la apuesta recomendada para un pick.
type Stake struct {
	Amount float64
	Venue  string // casa elegida (puede ser un fallback del BestVenue)
	Odds   int    // precio americano en la casa elegida

	// Cómo se llegó al importe
	Units         float64 // multiplicador de unidad (modo tiered), 0 en kelly
	KellyFraction float64 // f* aplicado (modo kelly), 0 en tiered

	// Capped indica que el importe se recortó por falta de fondos (parcial
	// o a cero). Reason explica los importes degradados ("insufficient
	// data", "no funds").
	Capped bool
	Reason string
}

// PotentialProfit devuelve la ganancia neta si el pick acierta.
func (s Stake) PotentialProfit() float64 {
	return Profit(s.Amount, s.Odds)
}

// Pick es un candidato seleccionado para la carta del día, anotado con su
// slot, tier y stake. El Candidate embebido nunca se muta.
type Pick struct {
	Candidate
	Slot  int // 1..cap, en orden de ranking
	Tier  EdgeTier
	Stake Stake
}

// Severity es la gravedad de un warning de concentración.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityCaution
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityCaution:
		return "CAUTION"
	default:
		return "INFO"
	}
}

// Warning es un patrón de riesgo detectado sobre la carta seleccionada.
// Breakdown lleva las cifras exactas ("Overs: 4, Unders: 0") para que los
// tests puedan asertar sobre números, no solo sobre presencia.
type Warning struct {
	Kind      string // "sport" | "market" | "totals-direction" | "sides-direction" | "kickoff-cluster"
	Severity  Severity
	Message   string
	Breakdown string
}

// Scenario es una fila de la distribución de resultados de la carta: cuántos
// picks aciertan y el P&L neto bajo el modelo de media uniforme.
type Scenario struct {
	Wins      int
	Losses    int
	NetPL     float64
	BreakEven bool
}

// Card es el resultado completo de un build: la carta del día con stakes,
// diagnósticos de selección, warnings de concentración y la proyección de
// resultados. Se regenera entera en cada run.
type Card struct {
	RunID   string
	BuiltAt time.Time

	Picks       []Pick
	Picked      int
	Skipped     int // pasaron elegibilidad pero no el filtro de calidad
	SkipReasons []string

	Warnings  []Warning
	Scenarios []Scenario

	TotalStaked float64
	BestCase    float64 // NetPL del primer escenario (todo ganado)
	WorstCase   float64 // NetPL del último escenario (todo perdido)
}
