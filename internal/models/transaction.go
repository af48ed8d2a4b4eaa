package models

import "time"

// Transaction type values.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
	// TransactionTypeTransfer is a debit-only movement: the amount leaves
	// this wallet and no counter-wallet is credited.
	TransactionTypeTransfer = "transfer"
)

// Transaction is a single signed monetary event against one wallet.
// Rows are created and deleted, never edited in place; every create/delete
// is paired with exactly one balance delta on the referenced wallet.
type Transaction struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   uint    `gorm:"index;not null" json:"userId"`
	WalletID uint    `gorm:"index;not null" json:"walletId"`
	Type     string  `gorm:"size:16;index;not null" json:"type"` // income / expense / transfer
	Category string  `gorm:"size:64;not null" json:"category"`
	Title    string  `gorm:"size:128;not null" json:"title"`
	Amount   float64 `gorm:"not null" json:"amount"` // magnitude, always > 0
	Date     time.Time `gorm:"index;not null" json:"date"`
	Note     string    `gorm:"size:255" json:"note,omitempty"`

	// SourceInvoiceID links a settlement-generated transaction to its
	// invoice. The unique index makes settlement exactly-once at the
	// schema level, independent of the status guard.
	SourceInvoiceID *uint `gorm:"uniqueIndex" json:"sourceInvoiceId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	Wallet *Wallet `gorm:"foreignKey:WalletID" json:"wallet,omitempty"`
}

// ValidTransactionType reports whether t is one of the supported types.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	}
	return false
}

// SignedAmount returns the balance delta this transaction applied to its
// wallet when it was recorded: positive for income, negative for expense
// and for the debit-only transfer.
func (t *Transaction) SignedAmount() float64 {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return -t.Amount
}
