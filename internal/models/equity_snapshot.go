package models

import "gorm.io/gorm"

// EquitySnapshot is a point-in-time (balance, equity) reading for an account.
// Snapshots are append-only, never updated or deleted.
type EquitySnapshot struct {
	gorm.Model
	AccountID    uint    `gorm:"not null" json:"account_id"`
	Balance      float64 `json:"balance"`
	Equity       float64 `json:"equity"`
	SnapshotTime string  `json:"snapshot_time"`
}
