package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/A-M-Ahmed/fintrack-finance/internal/ledger"
	"github.com/A-M-Ahmed/fintrack-finance/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "handler_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.AuditLog{},
		&models.Session{},
	))
	return db
}

// asUser injects the given user the way the auth middleware would.
func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("currentUser", user)
		c.Next()
	}
}

// testRouter wires the API routes against a throwaway database, with the
// auth middleware replaced by a stub identity.
func testRouter(t *testing.T) (*gin.Engine, *gorm.DB, *models.User) {
	t.Helper()

	db := testDB(t)
	user := models.User{Name: "Handler Test", Email: "handler@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	svc := ledger.NewService(db)

	r := gin.New()
	api := r.Group("/api", asUser(&user))

	walletHandler := NewWalletHandler(svc)
	api.POST("/wallets", walletHandler.CreateWallet)
	api.GET("/wallets", walletHandler.ListWallets)
	api.GET("/wallets/:id", walletHandler.GetWallet)
	api.PATCH("/wallets/:id", walletHandler.UpdateWallet)
	api.DELETE("/wallets/:id", walletHandler.DeleteWallet)

	transactionHandler := NewTransactionHandler(svc)
	api.POST("/transactions", transactionHandler.AddTransaction)
	api.GET("/transactions", transactionHandler.GetTransactions)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	invoiceHandler := NewInvoiceHandler(svc)
	api.POST("/invoices", invoiceHandler.CreateInvoice)
	api.GET("/invoices", invoiceHandler.GetInvoices)
	api.GET("/invoices/:id", invoiceHandler.GetInvoice)
	api.PUT("/invoices/:id/status", invoiceHandler.UpdateInvoiceStatus)

	dashboardHandler := NewDashboardHandler(svc)
	api.GET("/dashboard/summary", dashboardHandler.GetSummary)

	return r, db, &user
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func errMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, w, &body)
	return body.Message
}
