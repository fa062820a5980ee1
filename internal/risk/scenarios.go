package risk

import (
	"math"

	"github.com/alejandrodnm/betcard/internal/domain"
)

// Projection es la distribución discreta de resultados de la carta.
type Projection struct {
	Scenarios   []domain.Scenario
	TotalStaked float64
	BestCase    float64
	WorstCase   float64
}

// Project enumera los N+1 escenarios de la carta, uno por número de
// aciertos de N a 0 (mejor a peor).
//
// Modelo de media uniforme: cada acierto suma el profit medio por pick y
// cada fallo resta el wager medio — no se enumera cuáles picks ganan, solo
// cuántos. Es una simplificación deliberada: la tabla de escenarios del UI
// depende de que haya exactamente N+1 filas, no C(N,w) combinaciones.
func Project(picks []domain.Pick) Projection {
	n := len(picks)
	if n == 0 {
		return Projection{}
	}

	var totalStaked, totalProfit float64
	for _, p := range picks {
		totalStaked += p.Stake.Amount
		totalProfit += p.Stake.PotentialProfit()
	}
	avgWager := totalStaked / float64(n)
	avgProfit := totalProfit / float64(n)

	scenarios := make([]domain.Scenario, 0, n+1)
	for wins := n; wins >= 0; wins-- {
		losses := n - wins
		net := float64(wins)*avgProfit - float64(losses)*avgWager
		scenarios = append(scenarios, domain.Scenario{
			Wins:      wins,
			Losses:    losses,
			NetPL:     net,
			BreakEven: math.Abs(net) <= avgWager,
		})
	}

	return Projection{
		Scenarios:   scenarios,
		TotalStaked: totalStaked,
		BestCase:    scenarios[0].NetPL,
		WorstCase:   scenarios[n].NetPL,
	}
}
