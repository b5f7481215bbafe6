package analytics

import (
	"testing"

	"goldbook/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildEquityCurve(t *testing.T) {
	snapshots := []models.EquitySnapshot{
		{SnapshotTime: "2024-01-01 00:00:00", Balance: 1000, Equity: 1000},
		{SnapshotTime: "2024-01-02 00:00:00", Balance: 1050, Equity: 1042.5},
		{SnapshotTime: "2024-01-03 00:00:00", Balance: 1020, Equity: 1031},
	}

	curve := BuildEquityCurve(snapshots)

	assert.Len(t, curve, len(snapshots))
	for i, point := range curve {
		assert.Equal(t, snapshots[i].SnapshotTime, point.Time)
		assert.Equal(t, snapshots[i].Balance, point.Balance)
		assert.Equal(t, snapshots[i].Equity, point.Equity)
	}
}

func TestBuildEquityCurve_EmptyInput(t *testing.T) {
	curve := BuildEquityCurve(nil)
	assert.NotNil(t, curve)
	assert.Empty(t, curve)
}
