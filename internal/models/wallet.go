package models

import (
	"time"

	"gorm.io/gorm"
)

// Wallet type values.
const (
	WalletTypeBank   = "bank"
	WalletTypeCash   = "cash"
	WalletTypeMobile = "mobile"
)

// Wallet is a named money container owned by one user.
//
// CurrentBalance is a cached value derived from InitialBalance plus the
// signed amounts of all live transactions referencing this wallet. It is
// only ever written through the ledger's balance-delta primitive.
type Wallet struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	UserID         uint    `gorm:"index;not null" json:"userId"`
	Name           string  `gorm:"size:64;not null" json:"name"`
	Type           string  `gorm:"size:16;not null" json:"type"` // bank / cash / mobile
	InitialBalance float64 `gorm:"not null" json:"initialBalance"`
	CurrentBalance float64 `gorm:"not null" json:"currentBalance"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"` // tombstone, transactions keep their reference
}

// ValidWalletType reports whether t is one of the supported wallet types.
func ValidWalletType(t string) bool {
	switch t {
	case WalletTypeBank, WalletTypeCash, WalletTypeMobile:
		return true
	}
	return false
}
