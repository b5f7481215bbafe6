package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"plain timestamp", "2024-01-05 10:30:00", true},
		{"trailing precision ignored", "2024-01-05 10:30:00.123456", true},
		{"empty", "", false},
		{"garbage", "garbage", false},
		{"date only", "2024-01-05", false},
		{"iso T separator", "2024-01-05T10:30:00", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, ok := ParseClock(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, 10, ts.Hour())
			}
		})
	}
}
