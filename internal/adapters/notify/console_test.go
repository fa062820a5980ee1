package notify_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/betcard/internal/adapters/notify"
	"github.com/alejandrodnm/betcard/internal/domain"
)

func makeCard() domain.Card {
	return domain.Card{
		RunID:   "run-1",
		BuiltAt: time.Date(2025, 11, 9, 9, 15, 0, 0, time.UTC),
		Picks: []domain.Pick{
			{
				Candidate: domain.Candidate{
					ID: "a", Event: "LAL @ BOS", Sport: domain.SportBasketball,
					Market: domain.MarketTotal, Side: "Over",
					LinePoints: 1.5, PriceCents: 8,
				},
				Slot: 1,
				Tier: domain.EdgePremium,
				Stake: domain.Stake{Amount: 30, Venue: "fanduel", Odds: -110},
			},
			{
				Candidate: domain.Candidate{
					ID: "b", Event: "NYJ @ NE", Sport: domain.SportFootballPro,
					Market: domain.MarketSpread, Side: "NYJ",
					LinePoints: 0.5, PriceCents: 6,
				},
				Slot: 2,
				Tier: domain.EdgeStandard,
				Stake: domain.Stake{Amount: 20, Venue: "draftkings", Odds: -105, Capped: true},
			},
		},
		Picked:      2,
		Skipped:     1,
		SkipReasons: []string{"MIA @ ORL total (Under): +0.5 pts / +2¢ — below edge floor"},
		Warnings: []domain.Warning{{
			Kind: "totals-direction", Severity: domain.SeverityCaution,
			Message: "every total on the card is Over", Breakdown: "Overs: 2, Unders: 0",
		}},
		Scenarios: []domain.Scenario{
			{Wins: 2, Losses: 0, NetPL: 46.32},
			{Wins: 1, Losses: 1, NetPL: -1.84, BreakEven: true},
			{Wins: 0, Losses: 2, NetPL: -50},
		},
		TotalStaked: 50,
		BestCase:    46.32,
		WorstCase:   -50,
	}
}

func TestConsole_FullTableShowsPicksWarningsScenarios(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, true)

	require.NoError(t, n.Notify(context.Background(), makeCard()))

	out := buf.String()
	assert.Contains(t, out, "LAL @ BOS")
	assert.Contains(t, out, "PREMIUM")
	assert.Contains(t, out, "CAPPED")
	assert.Contains(t, out, "Overs: 2, Unders: 0")
	assert.Contains(t, out, "below edge floor")
	assert.Contains(t, out, "Worst case $-50.00")
}

func TestConsole_CompactMode(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, false)

	require.NoError(t, n.Notify(context.Background(), makeCard()))

	out := buf.String()
	assert.Contains(t, out, "2 picks")
	assert.Contains(t, out, "$50.00 staked")
	assert.Contains(t, out, "warn:1")
}

func TestConsole_EmptyCard(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewConsoleWriter(&buf, true)

	card := domain.Card{Skipped: 2, SkipReasons: []string{"x", "y"}}
	require.NoError(t, n.Notify(context.Background(), card))

	out := buf.String()
	assert.Contains(t, out, "no playable card")
	assert.Contains(t, out, "skipped 2")
}
