package builder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/betcard/internal/domain"
	"github.com/alejandrodnm/betcard/internal/selector"
	"github.com/alejandrodnm/betcard/internal/staking"
)

// fakeProvider sirve un slate fijo en memoria.
type fakeProvider struct {
	pool     []domain.Candidate
	balances []domain.VenueBalance
}

func (f *fakeProvider) Candidates(context.Context) ([]domain.Candidate, error) {
	return f.pool, nil
}

func (f *fakeProvider) Balances(context.Context) ([]domain.VenueBalance, error) {
	return f.balances, nil
}

func testPool() []domain.Candidate {
	mk := func(id, event string, sport domain.Sport, market domain.MarketType, side string,
		points, cents float64, conf domain.Confidence, price string) domain.Candidate {
		return domain.Candidate{
			ID: id, Event: event, Sport: sport, Market: market, Side: side,
			Kickoff:    time.Date(2025, 11, 9, 19, 0, 0, 0, time.UTC),
			Decision:   domain.DecisionPlayable,
			Confidence: conf,
			LinePoints: points, PriceCents: cents,
			BestVenue: "fanduel",
			Quotes:    []domain.VenueQuote{{Venue: "fanduel", Price: price}},
		}
	}
	return []domain.Candidate{
		mk("a", "LAL @ BOS", domain.SportBasketball, domain.MarketTotal, "Over", 5.0, 10, domain.ConfidenceHigh, "-110"),
		mk("b", "NYJ @ NE", domain.SportFootballPro, domain.MarketSpread, "NYJ", 0, 6, domain.ConfidenceMedium, "-105"),
		mk("c", "DEN @ PHX", domain.SportBasketball, domain.MarketTotal, "Over", 0.5, 2, domain.ConfidenceLow, "-110"),
		mk("d", "CHI @ GB", domain.SportFootballPro, domain.MarketMoneyline, "CHI", 0, 20, domain.ConfidenceMedium, "-170"),
	}
}

func testBuilder(cap int) *Builder {
	cfg := DefaultConfig()
	cfg.Selector = selector.Config{SlotCap: cap}
	cfg.Sizer = staking.Config{Mode: staking.ModeTiered, UnitPercent: 2}
	return New(cfg, &fakeProvider{
		pool:     testPool(),
		balances: []domain.VenueBalance{{Venue: "fanduel", Balance: 1000}},
	}, nil, nil)
}

func TestBuildOnce_FullPipeline(t *testing.T) {
	card, err := testBuilder(5).BuildOnce(context.Background())
	require.NoError(t, err)

	// a (premium) y b (standard) entran; c se queda sin edge; d está
	// vetado por juice
	require.Equal(t, 2, card.Picked)
	assert.Equal(t, "a", card.Picks[0].ID)
	assert.Equal(t, 1, card.Picks[0].Slot)
	assert.Equal(t, "b", card.Picks[1].ID)
	assert.Equal(t, 1, card.Skipped)
	require.Len(t, card.SkipReasons, 1)
	assert.Contains(t, card.SkipReasons[0], "DEN @ PHX")

	// stakes: HIGH 1.5u = $30, MEDIUM 1u = $20
	assert.Equal(t, 30.0, card.Picks[0].Stake.Amount)
	assert.Equal(t, 20.0, card.Picks[1].Stake.Amount)
	assert.Equal(t, 50.0, card.TotalStaked)

	// N=2 → 3 escenarios, best primero
	require.Len(t, card.Scenarios, 3)
	assert.Equal(t, card.Scenarios[0].NetPL, card.BestCase)
	assert.InDelta(t, -50.0, card.WorstCase, 0.001)

	assert.NotEmpty(t, card.RunID)
	assert.False(t, card.BuiltAt.IsZero())
}

func TestBuildOnce_Deterministic(t *testing.T) {
	b := testBuilder(5)
	ctx := context.Background()

	first, err := b.BuildOnce(ctx)
	require.NoError(t, err)
	second, err := b.BuildOnce(ctx)
	require.NoError(t, err)

	// mismo pool y saldos → mismos slots, stakes y escenarios
	// (solo RunID/BuiltAt cambian)
	require.Equal(t, len(first.Picks), len(second.Picks))
	for i := range first.Picks {
		assert.Equal(t, first.Picks[i].ID, second.Picks[i].ID)
		assert.Equal(t, first.Picks[i].Slot, second.Picks[i].Slot)
		assert.Equal(t, first.Picks[i].Stake, second.Picks[i].Stake)
	}
	assert.Equal(t, first.Scenarios, second.Scenarios)
	assert.Equal(t, first.TotalStaked, second.TotalStaked)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestBuildOnce_EmptyPool(t *testing.T) {
	cfg := DefaultConfig()
	b := New(cfg, &fakeProvider{}, nil, nil)

	card, err := b.BuildOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, card.Picked)
	assert.Empty(t, card.Picks)
	assert.Empty(t, card.Scenarios)
	assert.Equal(t, 0.0, card.TotalStaked)
}
