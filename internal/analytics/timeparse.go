package analytics

import "time"

// clockLayout is the terminal's timestamp format.
const clockLayout = "2006-01-02 15:04:05"

// ParseClock parses a "YYYY-MM-DD HH:MM:SS" timestamp, ignoring anything past
// the first 19 characters. ok is false for empty or unparsable input; the
// bucketers treat that as "omit this trade from the bucket".
func ParseClock(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if len(s) > len(clockLayout) {
		s = s[:len(clockLayout)]
	}
	ts, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// prefix returns the first n characters of s, or s itself when shorter.
func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
