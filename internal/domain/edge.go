package domain

import "math"

// EdgeTier clasifica la fuerza del edge de un candidato.
type EdgeTier int

const (
	EdgeNone EdgeTier = iota
	EdgeStandard
	EdgePremium
)

// String devuelve el nombre del tier.
func (t EdgeTier) String() string {
	switch t {
	case EdgePremium:
		return "PREMIUM"
	case EdgeStandard:
		return "STANDARD"
	default:
		return "NONE"
	}
}

// Umbrales de cents: fijos — los cents ya están normalizados entre deportes,
// a diferencia de los puntos.
const (
	premiumCentsFloor  = 15.0
	standardCentsFloor = 5.0
)

// FloorKey identifica una entrada de la tabla de floors por (deporte, mercado).
type FloorKey struct {
	Sport  Sport
	Market MarketType
}

// FloorTable define, por (deporte, mercado), cuántos puntos de mejora hacen
// falta para que el edge cuente como PREMIUM o STANDARD. El mismo medio punto
// no vale lo mismo en un deporte que se decide por decenas de puntos que en
// uno que se decide por unidades. math.Inf(1) = los puntos nunca califican
// (moneyline: solo cents/confianza).
type FloorTable struct {
	Premium  map[FloorKey]float64
	Standard map[FloorKey]float64
}

// DefaultFloorTable devuelve la tabla de floors por defecto.
func DefaultFloorTable() FloorTable {
	inf := math.Inf(1)
	return FloorTable{
		// Puntos necesarios para PREMIUM. Totales de basket se mueven por
		// decenas de puntos; el runline de baseball por medios puntos.
		Premium: map[FloorKey]float64{
			{SportBasketball, MarketSpread}:      2.5,
			{SportBasketball, MarketTotal}:       5.0,
			{SportBasketball, MarketMoneyline}:   inf,
			{SportFootballPro, MarketSpread}:     1.5,
			{SportFootballPro, MarketTotal}:      3.5,
			{SportFootballPro, MarketMoneyline}:  inf,
			{SportFootballCollege, MarketSpread}: 2.0,
			{SportFootballCollege, MarketTotal}:  4.5,
			{SportHockey, MarketSpread}:          0.5,
			{SportHockey, MarketTotal}:           1.0,
			{SportHockey, MarketMoneyline}:       inf,
			{SportBaseball, MarketSpread}:        0.5,
			{SportBaseball, MarketTotal}:         1.0,
			{SportBaseball, MarketMoneyline}:     inf,
		},
		// Barra más baja para STANDARD; en hockey/baseball medio punto ya
		// mueve el resultado.
		Standard: map[FloorKey]float64{
			{SportBasketball, MarketSpread}:      1.0,
			{SportBasketball, MarketTotal}:       2.0,
			{SportBasketball, MarketMoneyline}:   inf,
			{SportFootballPro, MarketSpread}:     0.5,
			{SportFootballPro, MarketTotal}:      1.5,
			{SportFootballPro, MarketMoneyline}:  inf,
			{SportFootballCollege, MarketSpread}: 1.0,
			{SportFootballCollege, MarketTotal}:  2.0,
			{SportHockey, MarketSpread}:          0.25,
			{SportHockey, MarketTotal}:           0.5,
			{SportHockey, MarketMoneyline}:       inf,
			{SportBaseball, MarketSpread}:        0.25,
			{SportBaseball, MarketTotal}:         0.5,
			{SportBaseball, MarketMoneyline}:     inf,
		},
	}
}

// floor devuelve el floor de puntos para (sport, market). Pares desconocidos
// caen al floor finito más duro de la tabla — nunca al más blando.
func floor(table map[FloorKey]float64, sport Sport, market MarketType) float64 {
	if f, ok := table[FloorKey{sport, market}]; ok {
		return f
	}
	hardest := 0.0
	for _, f := range table {
		if !math.IsInf(f, 1) && f > hardest {
			hardest = f
		}
	}
	if hardest == 0 {
		return math.Inf(1)
	}
	return hardest
}

// ClassifyEdge clasifica la fuerza del edge de un candidato PLAYABLE.
// Pura y total: nunca lanza, inputs desconocidos degradan a lo conservador.
//
// PREMIUM: confianza HIGH, o ≥15¢, o |puntos| ≥ floor premium del par.
// STANDARD: ≥5¢, o |puntos| ≥ floor standard del par.
// NONE: sin señal positiva de valor — aunque la confianza sea HIGH, un
// candidato sin puntos ni cents positivos no tiene edge medible.
func ClassifyEdge(table FloorTable, sport Sport, market MarketType, confidence Confidence, linePoints, priceCents float64) EdgeTier {
	// Los puntos llegan con signo (los Under mejoran hacia abajo); lo que
	// importa es la magnitud de la mejora.
	points := math.Abs(linePoints)
	if points == 0 && priceCents <= 0 {
		return EdgeNone
	}

	if confidence == ConfidenceHigh ||
		priceCents >= premiumCentsFloor ||
		(points > 0 && points >= floor(table.Premium, sport, market)) {
		return EdgePremium
	}
	if priceCents >= standardCentsFloor ||
		(points > 0 && points >= floor(table.Standard, sport, market)) {
		return EdgeStandard
	}
	return EdgeNone
}
