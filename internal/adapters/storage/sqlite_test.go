package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/betcard/internal/adapters/storage"
	"github.com/alejandrodnm/betcard/internal/domain"
)

func makeCard(runID string, picks int) domain.Card {
	card := domain.Card{
		RunID:       runID,
		BuiltAt:     time.Now().UTC().Truncate(time.Second),
		Picked:      picks,
		Skipped:     1,
		TotalStaked: float64(picks) * 20,
		BestCase:    55.5,
		WorstCase:   -60,
		Warnings:    []domain.Warning{{Kind: "sport", Severity: domain.SeverityCaution}},
	}
	for i := 1; i <= picks; i++ {
		card.Picks = append(card.Picks, domain.Pick{
			Candidate: domain.Candidate{
				ID:      runID + "-c" + string(rune('0'+i)),
				Event:   "LAL @ BOS",
				Sport:   domain.SportBasketball,
				Market:  domain.MarketTotal,
				Side:    "Over",
				Kickoff: time.Date(2025, 11, 9, 19, 30, 0, 0, time.UTC),
			},
			Slot: i,
			Tier: domain.EdgePremium,
			Stake: domain.Stake{
				Amount: 20,
				Venue:  "fanduel",
				Odds:   -110,
				Capped: i == 2,
			},
		})
	}
	return card
}

func TestSQLiteStorage_SaveAndGetHistory(t *testing.T) {
	db, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.SaveCard(ctx, makeCard("run-1", 2)))

	from := time.Now().UTC().Add(-time.Minute)
	to := time.Now().UTC().Add(time.Minute)
	history, err := db.GetHistory(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, history, 1)

	card := history[0]
	assert.Equal(t, "run-1", card.RunID)
	assert.Equal(t, 2, card.Picked)
	assert.Equal(t, 40.0, card.TotalStaked)
	assert.InDelta(t, 55.5, card.BestCase, 0.001)

	require.Len(t, card.Picks, 2)
	// picks en orden de slot con su stake
	assert.Equal(t, 1, card.Picks[0].Slot)
	assert.Equal(t, domain.EdgePremium, card.Picks[0].Tier)
	assert.Equal(t, "fanduel", card.Picks[0].Stake.Venue)
	assert.Equal(t, -110, card.Picks[0].Stake.Odds)
	assert.False(t, card.Picks[0].Stake.Capped)
	assert.True(t, card.Picks[1].Stake.Capped)
}

func TestSQLiteStorage_EmptyCardStillRecordsRun(t *testing.T) {
	db, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.SaveCard(ctx, domain.Card{
		RunID:   "empty-run",
		BuiltAt: time.Now().UTC(),
	}))

	history, err := db.GetHistory(ctx, time.Now().Add(-time.Minute), time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Empty(t, history[0].Picks)
}

func TestSQLiteStorage_GetHistory_EmptyRange(t *testing.T) {
	db, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer db.Close()

	history, err := db.GetHistory(context.Background(),
		time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSQLiteStorage_MultipleRuns(t *testing.T) {
	db, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, db.SaveCard(ctx, makeCard("run-a", 1)))
	require.NoError(t, db.SaveCard(ctx, makeCard("run-b", 3)))

	history, err := db.GetHistory(ctx, time.Now().Add(-time.Minute), time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
