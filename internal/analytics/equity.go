package analytics

import "goldbook/internal/models"

// EquityPoint is one plotting-ready point on the equity curve.
type EquityPoint struct {
	Time    string  `json:"time"`
	Balance float64 `json:"balance"`
	Equity  float64 `json:"equity"`
}

// BuildEquityCurve projects snapshots into curve points, one per snapshot,
// values and order passed through unchanged. Callers must supply snapshots
// ascending by snapshot time; this is not checked here, and an unsorted input
// draws a wrong curve rather than failing.
func BuildEquityCurve(snapshots []models.EquitySnapshot) []EquityPoint {
	curve := make([]EquityPoint, 0, len(snapshots))
	for _, s := range snapshots {
		curve = append(curve, EquityPoint{
			Time:    s.SnapshotTime,
			Balance: s.Balance,
			Equity:  s.Equity,
		})
	}
	return curve
}
