package analytics

import "math"

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// accumulate adds profit to the bucket under key, rounding the running sum to
// two decimals after every contribution. The report format depends on this
// per-update rounding; a strict-precision mode would swap out this function.
func accumulate(m map[string]float64, key string, profit float64) {
	m[key] = round2(m[key] + profit)
}
