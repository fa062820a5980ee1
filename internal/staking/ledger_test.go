package staking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alejandrodnm/betcard/internal/domain"
)

func TestLedger_BankrollIsSnapshotSum(t *testing.T) {
	l := NewLedger([]domain.VenueBalance{
		{Venue: "fanduel", Balance: 600},
		{Venue: "draftkings", Balance: 400},
	})
	assert.Equal(t, 1000.0, l.Bankroll())

	// reservar no cambia el bankroll del snapshot
	assert.True(t, l.Reserve("fanduel", 100))
	assert.Equal(t, 1000.0, l.Bankroll())
	assert.Equal(t, 500.0, l.Available("fanduel"))
}

func TestLedger_ReserveRejectsOverdraft(t *testing.T) {
	l := NewLedger([]domain.VenueBalance{{Venue: "fanduel", Balance: 50}})

	assert.False(t, l.Reserve("fanduel", 60))
	assert.Equal(t, 50.0, l.Available("fanduel"))

	assert.True(t, l.Reserve("fanduel", 50))
	assert.False(t, l.Reserve("fanduel", 0.01))
}

func TestLedger_IgnoresNonPositiveBalancesAndAmounts(t *testing.T) {
	l := NewLedger([]domain.VenueBalance{
		{Venue: "fanduel", Balance: 0},
		{Venue: "draftkings", Balance: -25},
	})
	assert.Equal(t, 0.0, l.Bankroll())
	assert.False(t, l.Reserve("fanduel", -10))
	assert.False(t, l.Reserve("unknown", 10))
}
