package ledger

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/A-M-Ahmed/fintrack-finance/internal/models"

	"gorm.io/gorm"
)

// InvoiceItemInput is one line of a new invoice.
type InvoiceItemInput struct {
	Name  string
	Qty   int
	Price float64
}

// InvoiceInput carries the fields of a new invoice.
type InvoiceInput struct {
	InvoiceID  string
	ClientName string
	Items      []InvoiceItemInput
	DueDate    time.Time
}

// CreateInvoice creates a pending invoice. The total is computed once here;
// invoices are never edited, so it is never recomputed.
func (s *Service) CreateInvoice(ownerID uint, input InvoiceInput) (*models.Invoice, error) {
	input.InvoiceID = strings.TrimSpace(input.InvoiceID)
	input.ClientName = strings.TrimSpace(input.ClientName)

	if input.InvoiceID == "" {
		return nil, validationf("invoice ID is required")
	}
	if input.ClientName == "" {
		return nil, validationf("client name is required")
	}
	if len(input.Items) == 0 {
		return nil, validationf("at least one item is required")
	}
	if input.DueDate.IsZero() {
		return nil, validationf("due date is required")
	}

	var total float64
	items := make([]models.InvoiceItem, 0, len(input.Items))
	for i, item := range input.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, validationf("item %d: name is required", i+1)
		}
		if item.Qty <= 0 {
			return nil, validationf("item %d: quantity must be at least 1", i+1)
		}
		if item.Price < 0 {
			return nil, validationf("item %d: price must not be negative", i+1)
		}
		total += float64(item.Qty) * item.Price
		items = append(items, models.InvoiceItem{Name: name, Qty: item.Qty, Price: item.Price})
	}

	invoice := models.Invoice{
		UserID:     ownerID,
		InvoiceID:  input.InvoiceID,
		ClientName: input.ClientName,
		Total:      total,
		Status:     models.InvoiceStatusPending,
		IssueDate:  time.Now(),
		DueDate:    input.DueDate,
		Items:      items,
	}
	if err := s.DB.Create(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ListInvoices returns the owner's invoices, newest first.
func (s *Service) ListInvoices(ownerID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.DB.Where("user_id = ?", ownerID).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetInvoice returns a single invoice after the ownership check.
func (s *Service) GetInvoice(id, ownerID uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := s.DB.Preload("Items").First(&invoice, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Resource: "invoice"}
		}
		return nil, err
	}
	if invoice.UserID != ownerID {
		return nil, &AuthorizationError{}
	}
	return &invoice, nil
}

// UpdateInvoiceStatus moves an invoice through its status machine. The
// transition into "paid" from a non-paid state settles the invoice: one
// correlated transaction is recorded through the ledger's own creation
// path, in the same database transaction as the status write. Re-marking a
// paid invoice is a no-op with respect to the ledger, so settlement fires
// at most once.
func (s *Service) UpdateInvoiceStatus(id, ownerID uint, status string, walletID uint, txType string) (*models.Invoice, error) {
	if !models.ValidInvoiceStatus(status) {
		return nil, validationf("status must be 'pending', 'paid' or 'overdue'")
	}

	var invoice models.Invoice
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&invoice, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Resource: "invoice"}
			}
			return err
		}
		if invoice.UserID != ownerID {
			return &AuthorizationError{}
		}

		settle := status == models.InvoiceStatusPaid && invoice.Status != models.InvoiceStatusPaid
		if settle {
			if walletID == 0 {
				return validationf("wallet is required when marking an invoice as paid")
			}
			if txType == "" {
				txType = models.TransactionTypeIncome
			}

			sourceID := invoice.ID
			_, err := s.recordTransaction(tx, ownerID, TransactionInput{
				WalletID:        walletID,
				Type:            txType,
				Category:        "Invoice",
				Title:           fmt.Sprintf("Invoice %s - %s", invoice.InvoiceID, invoice.ClientName),
				Amount:          invoice.Total,
				Note:            fmt.Sprintf("Settlement of invoice %s", invoice.InvoiceID),
				sourceInvoiceID: &sourceID,
			})
			if err != nil {
				return err
			}
		}

		invoice.Status = status
		if err := tx.Model(&invoice).Update("status", status).Error; err != nil {
			if settle {
				return &ConsistencyError{Op: "update invoice status", Err: err}
			}
			return err
		}

		if settle {
			slog.Info("invoice settled",
				"invoice_id", invoice.InvoiceID,
				"wallet_id", walletID,
				"amount", invoice.Total,
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
