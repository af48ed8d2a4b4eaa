// Package ledger is the consistency engine of the finance tracker: it owns
// every write that can move a wallet's cached balance and guarantees the
// invariant
//
//	currentBalance == initialBalance + Σ signed amounts of live transactions
//
// after every mutation. All writers go through applyBalanceDelta inside a
// database transaction, so a ledger event and its balance delta commit or
// roll back together.
package ledger

import (
	"errors"

	"github.com/A-M-Ahmed/fintrack-finance/internal/models"

	"gorm.io/gorm"
)

// Service exposes the wallet store, the transaction ledger, the invoice
// settlement bridge and the dashboard aggregation over one database handle.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// applyBalanceDelta adds a signed amount to a wallet's cached balance using
// a server-side arithmetic update, so two concurrent deltas can never lose
// one another to a read-modify-write race. It is the only code allowed to
// touch current_balance and must run inside the same database transaction
// as the ledger event it accompanies.
func applyBalanceDelta(tx *gorm.DB, walletID, ownerID uint, delta float64) error {
	res := tx.Model(&models.Wallet{}).
		Where("id = ? AND user_id = ?", walletID, ownerID).
		UpdateColumn("current_balance", gorm.Expr("current_balance + ?", delta))
	if res.Error != nil {
		return &ConsistencyError{Op: "apply balance delta", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		// wallet vanished (or owner mismatch) between validation and update
		return &NotFoundError{Resource: "wallet"}
	}
	return nil
}

// ApplyBalanceDelta applies a signed amount to a wallet as its own unit of
// work. Other components never mutate balances directly; they either call
// this or go through a ledger write that embeds applyBalanceDelta.
func (s *Service) ApplyBalanceDelta(walletID, ownerID uint, delta float64) (*models.Wallet, error) {
	var wallet models.Wallet
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := applyBalanceDelta(tx, walletID, ownerID, delta); err != nil {
			return err
		}
		return tx.First(&wallet, walletID).Error
	})
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// ownedWallet loads a wallet by id and distinguishes "does not exist" from
// "exists but belongs to someone else".
func ownedWallet(tx *gorm.DB, id, ownerID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := tx.First(&wallet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "wallet"}
		}
		return nil, err
	}
	if wallet.UserID != ownerID {
		return nil, &AuthorizationError{}
	}
	return &wallet, nil
}
