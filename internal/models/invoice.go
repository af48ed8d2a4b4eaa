package models

import "time"

// Invoice status values.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice is a billable document. Marking it paid generates exactly one
// correlated Transaction through the ledger; the document itself is never
// edited after creation, so Total is computed once.
type Invoice struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index;not null" json:"userId"`
	InvoiceID  string `gorm:"size:64;not null" json:"invoiceId"` // human-readable number, e.g. INV-0042
	ClientName string `gorm:"size:128;not null" json:"clientName"`
	Total      float64 `gorm:"not null" json:"total"`
	Status     string  `gorm:"size:16;index;default:pending" json:"status"` // pending / paid / overdue
	IssueDate  time.Time `gorm:"not null" json:"issueDate"`
	DueDate    time.Time `gorm:"not null" json:"dueDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Items []InvoiceItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	InvoiceID uint    `gorm:"index;not null" json:"-"`
	Name      string  `gorm:"size:128;not null" json:"name"`
	Qty       int     `gorm:"not null" json:"qty"`
	Price     float64 `gorm:"not null" json:"price"`
}

// ValidInvoiceStatus reports whether s is one of the supported statuses.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}
