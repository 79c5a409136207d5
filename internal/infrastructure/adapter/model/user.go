package model

import (
	"time"
)

// User represents the database model for accounts
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"uniqueIndex;not null;size:64"`
	Hash      string    `gorm:"not null;size:255"`
	Cash      int64     `gorm:"not null;check:chk_users_cash_non_negative,cash >= 0"` // Cash in cents
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
