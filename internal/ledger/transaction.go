package ledger

import (
	"strings"
	"time"

	"github.com/A-M-Ahmed/fintrack-finance/internal/models"
	"github.com/A-M-Ahmed/fintrack-finance/internal/util"

	"gorm.io/gorm"
)

// TransactionInput carries the fields of a new ledger event.
type TransactionInput struct {
	WalletID uint
	Type     string
	Category string
	Title    string
	Amount   float64
	Date     time.Time // zero value means "now"
	Note     string

	// set only by the invoice settlement bridge
	sourceInvoiceID *uint
}

// signedDelta is the balance change a new transaction applies to its wallet.
// Transfer is debit-only: the amount leaves this wallet and nothing is
// credited elsewhere.
func signedDelta(txType string, amount float64) float64 {
	if txType == models.TransactionTypeIncome {
		return amount
	}
	return -amount
}

// RecordTransaction validates, persists and balance-applies one ledger
// event as a single unit of work. Either the transaction row and its wallet
// delta both commit, or neither does.
func (s *Service) RecordTransaction(ownerID uint, input TransactionInput) (*models.Transaction, error) {
	created, err := s.recordTransaction(s.DB, ownerID, input)
	if err != nil {
		return nil, err
	}

	// reload with the wallet populated for display
	var out models.Transaction
	if err := s.DB.Preload("Wallet").First(&out, created.ID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// recordTransaction runs the create inside its own database transaction on
// db. The settlement bridge passes an already-open transaction so the
// invoice status write joins the same unit.
func (s *Service) recordTransaction(db *gorm.DB, ownerID uint, input TransactionInput) (*models.Transaction, error) {
	input.Category = strings.TrimSpace(input.Category)
	input.Title = strings.TrimSpace(input.Title)

	if !models.ValidTransactionType(input.Type) {
		return nil, validationf("transaction type must be 'income', 'expense' or 'transfer'")
	}
	if input.Category == "" {
		return nil, validationf("category is required")
	}
	if input.Title == "" {
		return nil, validationf("title is required")
	}
	if err := util.ValidateAmount(input.Amount); err != nil {
		return nil, validationf("%v", err)
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	transaction := models.Transaction{
		UserID:          ownerID,
		WalletID:        input.WalletID,
		Type:            input.Type,
		Category:        input.Category,
		Title:           input.Title,
		Amount:          input.Amount,
		Date:            input.Date,
		Note:            input.Note,
		SourceInvoiceID: input.sourceInvoiceID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := ownedWallet(tx, input.WalletID, ownerID); err != nil {
			return err
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return &ConsistencyError{Op: "create transaction", Err: err}
		}
		return applyBalanceDelta(tx, input.WalletID, ownerID, signedDelta(input.Type, input.Amount))
	})
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// TransactionFilter narrows ListTransactions. Zero values mean "no filter".
type TransactionFilter struct {
	WalletID uint
	Type     string
	Search   string // case-insensitive substring on title or category
	Sort     string // date_desc (default), date_asc, amount_desc, amount_asc
}

// ListTransactions returns the owner's transactions with optional filters.
func (s *Service) ListTransactions(ownerID uint, filter TransactionFilter) ([]models.Transaction, error) {
	q := s.DB.Model(&models.Transaction{}).Where("user_id = ?", ownerID)

	if filter.WalletID != 0 {
		q = q.Where("wallet_id = ?", filter.WalletID)
	}
	if models.ValidTransactionType(filter.Type) {
		q = q.Where("type = ?", filter.Type)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(category) LIKE ?", like, like)
	}

	orderBy := "date DESC, id DESC"
	switch filter.Sort {
	case "date_asc":
		orderBy = "date ASC, id ASC"
	case "amount_desc":
		orderBy = "amount DESC, id DESC"
	case "amount_asc":
		orderBy = "amount ASC, id ASC"
	}

	var transactions []models.Transaction
	if err := q.Preload("Wallet").Order(orderBy).Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// DeleteTransaction removes one ledger event and reverses its balance
// effect in the same unit of work. If the wallet has been deleted in the
// meantime the reversing delta is skipped and only the row is removed.
func (s *Service) DeleteTransaction(id, ownerID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		if err := tx.First(&transaction, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &NotFoundError{Resource: "transaction"}
			}
			return err
		}
		if transaction.UserID != ownerID {
			return &AuthorizationError{}
		}

		// reverse the original delta, unless the wallet is tombstoned
		var count int64
		if err := tx.Model(&models.Wallet{}).
			Where("id = ? AND user_id = ?", transaction.WalletID, ownerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			if err := applyBalanceDelta(tx, transaction.WalletID, ownerID, -transaction.SignedAmount()); err != nil {
				return err
			}
		}

		if err := tx.Delete(&transaction).Error; err != nil {
			return &ConsistencyError{Op: "delete transaction", Err: err}
		}
		return nil
	})
}
