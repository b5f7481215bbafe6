// Package analytics turns an account's stored trade history and equity
// snapshots into a performance report.
//
// Every function here is a pure function of its inputs: no state, no I/O, no
// error returns. Degenerate input degrades the report (empty stats, skipped
// buckets) instead of failing; validation belongs to the ingestion boundary.
package analytics

import "goldbook/internal/models"

// Report is the full analytics response for one account, shaped for direct
// consumption by the charting front end.
type Report struct {
	Stats       *StatsSummary               `json:"stats"`
	EquityCurve []EquityPoint               `json:"equity_curve"`
	Calendar    map[string]float64          `json:"calendar"`
	Hours       map[string]float64          `json:"hours"`
	Days        map[string]float64          `json:"days"`
	Pairs       map[string]*InstrumentStats `json:"pairs"`
	Monthly     map[string]float64          `json:"monthly"`
	TradeCount  int                         `json:"trade_count"`
}

// Assemble composes the full report from one account's trades and snapshots.
// Each section is computed independently over the same inputs; Assemble adds
// no derived logic of its own.
//
// Trades are consumed in the order given (the journal supplies them newest
// first, which ComputeStats's streak and drawdown figures depend on);
// snapshots must be ascending by snapshot time.
func Assemble(trades []models.Trade, snapshots []models.EquitySnapshot) Report {
	return Report{
		Stats:       ComputeStats(trades),
		EquityCurve: BuildEquityCurve(snapshots),
		Calendar:    CalendarPnL(trades),
		Hours:       HourOfDayPnL(trades),
		Days:        DayOfWeekPnL(trades),
		Pairs:       ByInstrument(trades),
		Monthly:     MonthlyPnL(trades),
		TradeCount:  len(trades),
	}
}
