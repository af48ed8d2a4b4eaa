package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/A-M-Ahmed/fintrack-finance/internal/ledger"
	"github.com/A-M-Ahmed/fintrack-finance/internal/util"

	"github.com/gin-gonic/gin"
)

// TransactionHandler exposes the transaction ledger over REST.
type TransactionHandler struct {
	Ledger *ledger.Service
}

func NewTransactionHandler(svc *ledger.Service) *TransactionHandler {
	return &TransactionHandler{Ledger: svc}
}

type createTransactionReq struct {
	WalletID uint    `json:"walletId" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=income expense transfer"`
	Category string  `json:"category" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date"`
	Note     string  `json:"note" binding:"max=255"`
}

// AddTransaction handles POST /api/transactions.
func (h *TransactionHandler) AddTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Please provide all details")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := util.ParseDate(req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid date")
			return
		}
		date = parsed
	}

	transaction, err := h.Ledger.RecordTransaction(user.ID, ledger.TransactionInput{
		WalletID: req.WalletID,
		Type:     req.Type,
		Category: req.Category,
		Title:    req.Title,
		Amount:   req.Amount,
		Date:     date,
		Note:     req.Note,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}

// GetTransactions handles GET /api/transactions with optional walletId,
// type, search and sort query parameters.
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	filter := ledger.TransactionFilter{
		Type:   c.Query("type"),
		Search: c.Query("search"),
		Sort:   c.DefaultQuery("sort", "date_desc"),
	}
	if walletStr := c.Query("walletId"); walletStr != "" {
		walletID, err := strconv.Atoi(walletStr)
		if err != nil || walletID <= 0 {
			util.Error(c, http.StatusBadRequest, "Invalid wallet id")
			return
		}
		filter.WalletID = uint(walletID)
	}

	transactions, err := h.Ledger.ListTransactions(user.ID, filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// DeleteTransaction handles DELETE /api/transactions/:id.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	id, ok := idParam(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	if err := h.Ledger.DeleteTransaction(id, user.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
