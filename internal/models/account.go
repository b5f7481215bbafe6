package models

import "gorm.io/gorm"

// Account represents a brokerage account registered with the journal.
type Account struct {
	gorm.Model
	AccountNumber string `gorm:"uniqueIndex;not null" json:"account_number"`
	PasswordHash  string `gorm:"not null" json:"-"`
	Broker        string `gorm:"default:MT5" json:"broker"`
	Currency      string `gorm:"default:USD" json:"currency"`
}
