package models

import "gorm.io/gorm"

// Trade represents one closed position belonging to an account.
//
// (AccountID, Ticket) is unique, so re-submitting the same ticket is a no-op.
// OpenTime and CloseTime are stored as "YYYY-MM-DD HH:MM:SS" strings as
// reported by the terminal; an empty string means the timestamp is unknown.
// Trades are immutable once stored.
type Trade struct {
	gorm.Model
	AccountID       uint    `gorm:"uniqueIndex:idx_account_ticket;not null" json:"account_id"`
	Ticket          int64   `gorm:"uniqueIndex:idx_account_ticket" json:"ticket"`
	Pair            string  `json:"pair"`
	TradeType       string  `json:"trade_type"` // "buy" or "sell"
	OpenTime        string  `json:"open_time"`
	CloseTime       string  `json:"close_time"`
	OpenPrice       float64 `json:"open_price"`
	ClosePrice      float64 `json:"close_price"`
	StopLoss        float64 `json:"sl"`
	TakeProfit      float64 `json:"tp"`
	Lots            float64 `json:"lots"`
	Profit          float64 `json:"profit"`
	Commission      float64 `gorm:"default:0" json:"commission"`
	Swap            float64 `gorm:"default:0" json:"swap"`
	DurationMinutes int     `json:"duration_minutes"`
}
