package model

import (
	"time"
)

// Transaction represents one ledger row. Shares is signed and Price is in cents.
type Transaction struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;index:idx_transactions_user_created,priority:1"`
	Symbol    string    `gorm:"not null;size:16"`
	Shares    int64     `gorm:"not null;check:chk_transactions_shares_non_zero,shares <> 0"`
	Price     int64     `gorm:"not null;check:chk_transactions_price_positive,price > 0"`
	CreatedAt time.Time `gorm:"not null;index:idx_transactions_user_created,priority:2"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// HoldingRow is the scan target of the per-symbol share aggregation
type HoldingRow struct {
	Symbol string
	Shares int64
}
