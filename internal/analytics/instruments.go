package analytics

import "goldbook/internal/models"

// InstrumentStats is the win/loss/profit breakdown for one instrument.
type InstrumentStats struct {
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Profit float64 `json:"profit"`
}

// ByInstrument groups trade outcomes by instrument pair. Trades without a
// pair land under "Unknown". The win/loss classification matches
// ComputeStats: zero profit is a loss. Group profit is rounded to two
// decimals after each trade.
func ByInstrument(trades []models.Trade) map[string]*InstrumentStats {
	pairs := make(map[string]*InstrumentStats)
	for _, t := range trades {
		key := t.Pair
		if key == "" {
			key = "Unknown"
		}
		group, ok := pairs[key]
		if !ok {
			group = &InstrumentStats{}
			pairs[key] = group
		}
		if t.Profit > 0 {
			group.Wins++
		} else {
			group.Losses++
		}
		group.Profit = round2(group.Profit + t.Profit)
	}
	return pairs
}
