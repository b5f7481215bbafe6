package analytics

import (
	"testing"

	"goldbook/internal/models"

	"github.com/stretchr/testify/assert"
)

func tradesFromProfits(profits ...float64) []models.Trade {
	trades := make([]models.Trade, len(profits))
	for i, p := range profits {
		trades[i] = models.Trade{Profit: p}
	}
	return trades
}

func TestComputeStats_EmptyInput(t *testing.T) {
	assert.Nil(t, ComputeStats(nil))
	assert.Nil(t, ComputeStats([]models.Trade{}))
}

func TestComputeStats_MixedSequence(t *testing.T) {
	// Order matters for streaks and drawdown; this sequence alternates.
	stats := ComputeStats(tradesFromProfits(100, -50, 50, -20, -10))

	assert.Equal(t, 5, stats.TotalTrades)
	assert.Equal(t, 2, stats.WinCount)
	assert.Equal(t, 3, stats.LossCount)
	assert.Equal(t, 40.0, stats.WinRate)
	assert.Equal(t, 75.0, stats.AvgWin)
	assert.InDelta(t, -26.67, stats.AvgLoss, 0.001)
	assert.Equal(t, 150.0, stats.GrossProfit)
	assert.Equal(t, 80.0, stats.GrossLoss)
	assert.InDelta(t, 1.88, stats.ProfitFactor, 0.001) // 1.875 rounded
	assert.Equal(t, 14.0, stats.Expectancy)
	assert.Equal(t, 70.0, stats.TotalProfit)
	assert.Equal(t, 1, stats.MaxConsecWins)
	assert.Equal(t, 2, stats.MaxConsecLosses)
	// Peak after the first trade is 100; the low point of the running total
	// is 50, right after the second trade.
	assert.Equal(t, 50.0, stats.MaxDrawdown)
	assert.InDelta(t, 0.23, stats.SharpeRatio, 0.001)
}

func TestComputeStats_WinLossPartition(t *testing.T) {
	testCases := []struct {
		name    string
		profits []float64
		wins    int
		losses  int
	}{
		{"all wins", []float64{1, 2, 3}, 3, 0},
		{"all losses", []float64{-1, -2}, 0, 2},
		{"zero profit counts as loss", []float64{0, 10, 0}, 1, 2},
		{"single zero trade", []float64{0}, 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := ComputeStats(tradesFromProfits(tc.profits...))
			assert.Equal(t, tc.wins, stats.WinCount)
			assert.Equal(t, tc.losses, stats.LossCount)
			// The partition identity the classification rule exists for.
			assert.Equal(t, stats.TotalTrades, stats.WinCount+stats.LossCount)
		})
	}
}

func TestComputeStats_DivisionGuards(t *testing.T) {
	// No losing amount: profit factor must fall back to 0, not blow up.
	noLosses := ComputeStats(tradesFromProfits(10, 20))
	assert.Equal(t, 0.0, noLosses.GrossLoss)
	assert.Equal(t, 0.0, noLosses.ProfitFactor)

	// A single trade has no sample deviation.
	single := ComputeStats(tradesFromProfits(42))
	assert.Equal(t, 0.0, single.SharpeRatio)

	// Identical profits: stdev is 0, sharpe stays 0.
	flat := ComputeStats(tradesFromProfits(5, 5, 5))
	assert.Equal(t, 0.0, flat.SharpeRatio)
}

func TestComputeStats_ZeroProfitBreaksWinStreak(t *testing.T) {
	stats := ComputeStats(tradesFromProfits(10, 0, 10, 10))
	assert.Equal(t, 2, stats.MaxConsecWins)
	assert.Equal(t, 1, stats.MaxConsecLosses)
}

func TestComputeStats_StreaksDependOnSuppliedOrder(t *testing.T) {
	// Same trades, different order, different streaks. The engine never
	// reorders input, so callers control what a "streak" means.
	forward := ComputeStats(tradesFromProfits(10, 20, -5, -5))
	backward := ComputeStats(tradesFromProfits(-5, 10, -5, 20))

	assert.Equal(t, 2, forward.MaxConsecWins)
	assert.Equal(t, 1, backward.MaxConsecWins)
	assert.Equal(t, forward.TotalProfit, backward.TotalProfit)
	assert.Equal(t, forward.WinCount, backward.WinCount)
}

func TestComputeStats_DrawdownPeakStartsAtZero(t *testing.T) {
	// A sequence that only loses draws down from the initial zero peak.
	stats := ComputeStats(tradesFromProfits(-10, -20))
	assert.Equal(t, 30.0, stats.MaxDrawdown)

	// A sequence that only gains never draws down.
	gains := ComputeStats(tradesFromProfits(10, 20))
	assert.Equal(t, 0.0, gains.MaxDrawdown)
}

func TestComputeStats_Idempotent(t *testing.T) {
	trades := tradesFromProfits(3.33, -1.11, 0, 7.77, -2.22)
	first := ComputeStats(trades)
	second := ComputeStats(trades)
	assert.Equal(t, first, second)
}
