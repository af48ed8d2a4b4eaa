package router

import (
	"net/http"

	"github.com/A-M-Ahmed/fintrack-finance/internal/config"
	"github.com/A-M-Ahmed/fintrack-finance/internal/handler"
	"github.com/A-M-Ahmed/fintrack-finance/internal/ledger"
	"github.com/A-M-Ahmed/fintrack-finance/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	svc := ledger.NewService(db)

	api := r.Group("/api")

	// auth endpoints (no token required)
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", handler.GetMe)
	protected.POST("/auth/change-password", handler.ChangePassword(db))
	protected.PUT("/auth/profile", handler.UpdateProfile(db))

	walletHandler := handler.NewWalletHandler(svc)
	protected.POST("/wallets", walletHandler.CreateWallet)
	protected.GET("/wallets", walletHandler.ListWallets)
	protected.GET("/wallets/:id", walletHandler.GetWallet)
	protected.PATCH("/wallets/:id", walletHandler.UpdateWallet)
	protected.DELETE("/wallets/:id", walletHandler.DeleteWallet)

	transactionHandler := handler.NewTransactionHandler(svc)
	protected.POST("/transactions", transactionHandler.AddTransaction)
	protected.GET("/transactions", transactionHandler.GetTransactions)
	protected.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	invoiceHandler := handler.NewInvoiceHandler(svc)
	protected.POST("/invoices", invoiceHandler.CreateInvoice)
	protected.GET("/invoices", invoiceHandler.GetInvoices)
	protected.GET("/invoices/:id", invoiceHandler.GetInvoice)
	protected.PUT("/invoices/:id/status", invoiceHandler.UpdateInvoiceStatus)

	dashboardHandler := handler.NewDashboardHandler(svc)
	protected.GET("/dashboard/summary", dashboardHandler.GetSummary)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}
