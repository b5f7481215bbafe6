package analytics

import (
	"strconv"

	"goldbook/internal/models"
)

// CalendarPnL sums profit per close date ("YYYY-MM-DD", the close_time
// prefix). Trades without a close time are left out entirely.
func CalendarPnL(trades []models.Trade) map[string]float64 {
	cal := make(map[string]float64)
	for _, t := range trades {
		if t.CloseTime == "" {
			continue
		}
		accumulate(cal, prefix(t.CloseTime, 10), t.Profit)
	}
	return cal
}

// HourOfDayPnL sums profit per opening hour, keyed "0".."23". All 24 keys are
// present even with no data. Trades whose open time is missing or unparsable
// are skipped without touching any key.
func HourOfDayPnL(trades []models.Trade) map[string]float64 {
	hours := make(map[string]float64, 24)
	for h := 0; h < 24; h++ {
		hours[strconv.Itoa(h)] = 0
	}
	for _, t := range trades {
		ts, ok := ParseClock(t.OpenTime)
		if !ok {
			continue
		}
		accumulate(hours, strconv.Itoa(ts.Hour()), t.Profit)
	}
	return hours
}

// DayOfWeekPnL sums profit per opening weekday, keyed by the three-letter
// English abbreviation. All 7 keys are present even with no data; the same
// skip rule as HourOfDayPnL applies.
func DayOfWeekPnL(trades []models.Trade) map[string]float64 {
	days := map[string]float64{
		"Mon": 0, "Tue": 0, "Wed": 0, "Thu": 0, "Fri": 0, "Sat": 0, "Sun": 0,
	}
	for _, t := range trades {
		ts, ok := ParseClock(t.OpenTime)
		if !ok {
			continue
		}
		accumulate(days, ts.Weekday().String()[:3], t.Profit)
	}
	return days
}

// MonthlyPnL sums profit per close month ("YYYY-MM", the close_time prefix).
// Trades without a close time are left out entirely.
func MonthlyPnL(trades []models.Trade) map[string]float64 {
	monthly := make(map[string]float64)
	for _, t := range trades {
		if t.CloseTime == "" {
			continue
		}
		accumulate(monthly, prefix(t.CloseTime, 7), t.Profit)
	}
	return monthly
}
