package ledger

import (
	"path/filepath"
	"testing"

	"github.com/A-M-Ahmed/fintrack-finance/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testService opens a throwaway SQLite database and returns a ledger
// service on top of it.
func testService(t *testing.T) *Service {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps SQLite happy under the concurrency tests
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Invoice{},
		&models.InvoiceItem{},
	))

	return NewService(db)
}

func testUser(t *testing.T, svc *Service, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, PasswordHash: "x"}
	require.NoError(t, svc.DB.Create(&user).Error)
	return &user
}

func testWallet(t *testing.T, svc *Service, ownerID uint, initial float64) *models.Wallet {
	t.Helper()
	wallet, err := svc.CreateWallet(ownerID, "Test Wallet", models.WalletTypeCash, initial)
	require.NoError(t, err)
	return wallet
}

// requireInvariant checks the core balance invariant for a wallet:
// currentBalance == initialBalance + sum of signed amounts of its live
// transactions.
func requireInvariant(t *testing.T, svc *Service, walletID uint) {
	t.Helper()

	var wallet models.Wallet
	require.NoError(t, svc.DB.Unscoped().First(&wallet, walletID).Error)

	var transactions []models.Transaction
	require.NoError(t, svc.DB.Where("wallet_id = ?", walletID).Find(&transactions).Error)

	expected := wallet.InitialBalance
	for i := range transactions {
		expected += transactions[i].SignedAmount()
	}
	require.InDelta(t, expected, wallet.CurrentBalance, 1e-9,
		"wallet %d: currentBalance diverged from transaction history", walletID)
}
