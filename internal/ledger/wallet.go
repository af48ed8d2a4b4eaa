package ledger

import (
	"strings"

	"github.com/A-M-Ahmed/fintrack-finance/internal/models"
)

// WalletPatch carries the user-editable wallet fields. Balance fields are
// deliberately not representable here: the only writer of current_balance
// is the delta primitive.
type WalletPatch struct {
	Name *string
	Type *string
}

// CreateWallet creates a wallet with its cached balance initialized to the
// initial balance.
func (s *Service) CreateWallet(ownerID uint, name, walletType string, initialBalance float64) (*models.Wallet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("wallet name is required")
	}
	if !models.ValidWalletType(walletType) {
		return nil, validationf("wallet type must be 'bank', 'cash' or 'mobile'")
	}
	if initialBalance < 0 {
		return nil, validationf("initial balance must not be negative")
	}

	wallet := models.Wallet{
		UserID:         ownerID,
		Name:           name,
		Type:           walletType,
		InitialBalance: initialBalance,
		CurrentBalance: initialBalance,
	}
	if err := s.DB.Create(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

// ListWallets returns all live wallets of the owner, newest first.
func (s *Service) ListWallets(ownerID uint) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := s.DB.Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&wallets).Error; err != nil {
		return nil, err
	}
	return wallets, nil
}

// GetWallet returns a single wallet after the ownership check.
func (s *Service) GetWallet(id, ownerID uint) (*models.Wallet, error) {
	return ownedWallet(s.DB, id, ownerID)
}

// UpdateWallet changes name and/or type. Initial and current balance are
// immutable from the outside.
func (s *Service) UpdateWallet(id, ownerID uint, patch WalletPatch) (*models.Wallet, error) {
	wallet, err := ownedWallet(s.DB, id, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, validationf("wallet name is required")
		}
		updates["name"] = name
	}
	if patch.Type != nil {
		if !models.ValidWalletType(*patch.Type) {
			return nil, validationf("wallet type must be 'bank', 'cash' or 'mobile'")
		}
		updates["type"] = *patch.Type
	}
	if len(updates) == 0 {
		return wallet, nil
	}

	if err := s.DB.Model(wallet).Updates(updates).Error; err != nil {
		return nil, err
	}
	return wallet, nil
}

// DeleteWallet tombstones a wallet. Its transactions keep their reference;
// deleting one of them later skips the reversing delta because the wallet
// is gone.
func (s *Service) DeleteWallet(id, ownerID uint) error {
	wallet, err := ownedWallet(s.DB, id, ownerID)
	if err != nil {
		return err
	}
	return s.DB.Delete(wallet).Error
}
