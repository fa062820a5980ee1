package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEdge_HighConfidenceIsPremium(t *testing.T) {
	table := DefaultFloorTable()
	tier := ClassifyEdge(table, SportBasketball, MarketSpread, ConfidenceHigh, 0.5, 0)
	assert.Equal(t, EdgePremium, tier)
}

func TestClassifyEdge_CentsThresholds(t *testing.T) {
	table := DefaultFloorTable()

	// 15¢ → PREMIUM aunque no haya puntos
	assert.Equal(t, EdgePremium,
		ClassifyEdge(table, SportHockey, MarketMoneyline, ConfidenceLow, 0, 15))
	// 5¢ → STANDARD
	assert.Equal(t, EdgeStandard,
		ClassifyEdge(table, SportHockey, MarketMoneyline, ConfidenceLow, 0, 6))
	// 4¢ y sin puntos → NONE
	assert.Equal(t, EdgeNone,
		ClassifyEdge(table, SportHockey, MarketMoneyline, ConfidenceLow, 0, 4))
}

func TestClassifyEdge_PointFloorsPerSport(t *testing.T) {
	table := DefaultFloorTable()

	// 1.0 pt en un total de hockey supera el floor premium (1.0)...
	assert.Equal(t, EdgePremium,
		ClassifyEdge(table, SportHockey, MarketTotal, ConfidenceMedium, 1.0, 0))
	// ...pero en un total de basket ni siquiera llega a standard (2.0)
	assert.Equal(t, EdgeNone,
		ClassifyEdge(table, SportBasketball, MarketTotal, ConfidenceMedium, 1.0, 0))
	// los Under llegan con puntos negativos: cuenta la magnitud
	assert.Equal(t, EdgePremium,
		ClassifyEdge(table, SportHockey, MarketTotal, ConfidenceMedium, -1.0, 0))
}

func TestClassifyEdge_NoPositiveSignalIsNone(t *testing.T) {
	table := DefaultFloorTable()
	// sin puntos ni cents positivos no hay edge medible, aunque la
	// confianza sea HIGH
	tier := ClassifyEdge(table, SportFootballPro, MarketSpread, ConfidenceHigh, 0, 0)
	assert.Equal(t, EdgeNone, tier)

	tier = ClassifyEdge(table, SportFootballPro, MarketSpread, ConfidenceHigh, 0, -3)
	assert.Equal(t, EdgeNone, tier)
}

func TestClassifyEdge_UnknownPairFallsToHardestFloor(t *testing.T) {
	table := DefaultFloorTable()

	// "tennis" no está en la tabla → floor premium = 5.0 y standard = 2.0
	// (los finitos más duros de cada tabla)
	assert.Equal(t, EdgeNone,
		ClassifyEdge(table, Sport("tennis"), MarketTotal, ConfidenceMedium, 1.5, 0))
	assert.Equal(t, EdgeStandard,
		ClassifyEdge(table, Sport("tennis"), MarketTotal, ConfidenceMedium, 4.5, 0))
	assert.Equal(t, EdgePremium,
		ClassifyEdge(table, Sport("tennis"), MarketTotal, ConfidenceMedium, 5.0, 0))
}

func TestClassifyEdge_MoneylinePointsNeverQualify(t *testing.T) {
	table := DefaultFloorTable()
	// un moneyline no tiene puntos de línea: floor = +Inf, solo cents o
	// confianza pueden calificarlo
	tier := ClassifyEdge(table, SportBasketball, MarketMoneyline, ConfidenceMedium, 3.0, 0)
	assert.Equal(t, EdgeNone, tier)
}

func TestClassifyEdge_EmptyTableNeverQualifiesOnPoints(t *testing.T) {
	tier := ClassifyEdge(FloorTable{}, SportBasketball, MarketSpread, ConfidenceMedium, 50, 0)
	assert.Equal(t, EdgeNone, tier)
}

func TestEdgeTier_String(t *testing.T) {
	assert.Equal(t, "PREMIUM", EdgePremium.String())
	assert.Equal(t, "STANDARD", EdgeStandard.String())
	assert.Equal(t, "NONE", EdgeNone.String())
}
