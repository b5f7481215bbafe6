package analytics

import (
	"math"

	"goldbook/internal/models"
)

// StatsSummary is the scalar performance summary for a set of closed trades.
// It is derived per request and never persisted.
type StatsSummary struct {
	TotalTrades     int     `json:"total_trades"`
	WinCount        int     `json:"win_count"`
	LossCount       int     `json:"loss_count"`
	WinRate         float64 `json:"win_rate"`
	AvgWin          float64 `json:"avg_win"`
	AvgLoss         float64 `json:"avg_loss"`
	ProfitFactor    float64 `json:"profit_factor"`
	Expectancy      float64 `json:"expectancy"`
	SharpeRatio     float64 `json:"sharpe_ratio"`
	MaxConsecWins   int     `json:"max_consec_wins"`
	MaxConsecLosses int     `json:"max_consec_losses"`
	TotalProfit     float64 `json:"total_profit"`
	MaxDrawdown     float64 `json:"max_drawdown"`
	GrossProfit     float64 `json:"gross_profit"`
	GrossLoss       float64 `json:"gross_loss"`
}

// ComputeStats derives the performance summary from a trade set. A trade with
// profit > 0 is a win; everything else, including zero profit, counts as a
// loss, so WinCount+LossCount always equals TotalTrades.
//
// Streaks and drawdown walk the trades in the order supplied; the engine never
// reorders them. The journal fetches trades newest first, so streaks and the
// running drawdown are counted backward from the present.
//
// SharpeRatio is a naive per-trade proxy: mean profit over sample standard
// deviation, not annualized and with no risk-free rate.
//
// Returns nil for an empty trade set; never fails.
func ComputeStats(trades []models.Trade) *StatsSummary {
	if len(trades) == 0 {
		return nil
	}

	var (
		total     = len(trades)
		winCount  int
		winSum    float64
		lossSum   float64
		profitSum float64
	)
	for _, t := range trades {
		profitSum += t.Profit
		if t.Profit > 0 {
			winCount++
			winSum += t.Profit
		} else {
			lossSum += t.Profit
		}
	}
	lossCount := total - winCount

	winRate := float64(winCount) / float64(total) * 100

	var avgWin, avgLoss float64
	if winCount > 0 {
		avgWin = winSum / float64(winCount)
	}
	if lossCount > 0 {
		avgLoss = lossSum / float64(lossCount)
	}

	grossProfit := winSum
	grossLoss := math.Abs(lossSum)

	var profitFactor float64
	if grossLoss > 0 {
		profitFactor = grossProfit / grossLoss
	}

	expectancy := winRate/100*avgWin + (1-winRate/100)*avgLoss

	// Sharpe proxy over per-trade profits, unbiased (n-1) estimator.
	var sharpe float64
	if total > 1 {
		mean := profitSum / float64(total)
		var sqDiff float64
		for _, t := range trades {
			d := t.Profit - mean
			sqDiff += d * d
		}
		std := math.Sqrt(sqDiff / float64(total-1))
		if std > 0 {
			sharpe = mean / std
		}
	}

	var maxConsecWins, maxConsecLosses, curWins, curLosses int
	for _, t := range trades {
		if t.Profit > 0 {
			curWins++
			curLosses = 0
			if curWins > maxConsecWins {
				maxConsecWins = curWins
			}
		} else {
			curLosses++
			curWins = 0
			if curLosses > maxConsecLosses {
				maxConsecLosses = curLosses
			}
		}
	}

	// Running drawdown over the supplied order: distance from the highest
	// cumulative profit seen so far, peak starting at 0.
	var peak, maxDrawdown, running float64
	for _, t := range trades {
		running += t.Profit
		if running > peak {
			peak = running
		}
		if dd := peak - running; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}

	return &StatsSummary{
		TotalTrades:     total,
		WinCount:        winCount,
		LossCount:       lossCount,
		WinRate:         round1(winRate),
		AvgWin:          round2(avgWin),
		AvgLoss:         round2(avgLoss),
		ProfitFactor:    round2(profitFactor),
		Expectancy:      round2(expectancy),
		SharpeRatio:     round2(sharpe),
		MaxConsecWins:   maxConsecWins,
		MaxConsecLosses: maxConsecLosses,
		TotalProfit:     round2(profitSum),
		MaxDrawdown:     round2(maxDrawdown),
		GrossProfit:     round2(grossProfit),
		GrossLoss:       round2(grossLoss),
	}
}
