package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidate_BestQuote(t *testing.T) {
	c := Candidate{
		BestVenue: "fanduel",
		Quotes: []VenueQuote{
			{Venue: "draftkings", Price: "-115"},
			{Venue: "fanduel", Price: "-105"},
		},
	}

	q, ok := c.BestQuote()
	assert.True(t, ok)
	assert.Equal(t, "-105", q.Price)

	c.BestVenue = "betmgm"
	_, ok = c.BestQuote()
	assert.False(t, ok)
}

func TestCandidate_BacksFavorite(t *testing.T) {
	// spread: el signo de la línea de referencia decide
	spread := Candidate{Market: MarketSpread, RefLine: -6.5}
	assert.True(t, spread.BacksFavorite())
	spread.RefLine = 3.0
	assert.False(t, spread.BacksFavorite())

	// moneyline: el signo del precio de referencia
	ml := Candidate{Market: MarketMoneyline, RefPrice: "-150"}
	assert.True(t, ml.BacksFavorite())
	ml.RefPrice = "+130"
	assert.False(t, ml.BacksFavorite())
	ml.RefPrice = ""
	assert.False(t, ml.BacksFavorite())

	// los totales no tienen favorito
	total := Candidate{Market: MarketTotal, RefLine: -1}
	assert.False(t, total.BacksFavorite())
}
