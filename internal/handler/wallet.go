package handler

import (
	"net/http"

	"github.com/A-M-Ahmed/fintrack-finance/internal/ledger"
	"github.com/A-M-Ahmed/fintrack-finance/internal/util"

	"github.com/gin-gonic/gin"
)

// WalletHandler exposes the wallet store over REST.
type WalletHandler struct {
	Ledger *ledger.Service
}

func NewWalletHandler(svc *ledger.Service) *WalletHandler {
	return &WalletHandler{Ledger: svc}
}

type createWalletReq struct {
	Name           string  `json:"name" binding:"required"`
	Type           string  `json:"type" binding:"required,oneof=bank cash mobile"`
	InitialBalance float64 `json:"initialBalance" binding:"gte=0"`
}

type updateWalletReq struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

// CreateWallet handles POST /api/wallets.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req createWalletReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid wallet payload")
		return
	}

	wallet, err := h.Ledger.CreateWallet(user.ID, req.Name, req.Type, req.InitialBalance)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, wallet)
}

// ListWallets handles GET /api/wallets.
func (h *WalletHandler) ListWallets(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	wallets, err := h.Ledger.ListWallets(user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wallets)
}

// GetWallet handles GET /api/wallets/:id.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	id, ok := idParam(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "Invalid wallet id")
		return
	}

	wallet, err := h.Ledger.GetWallet(id, user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// UpdateWallet handles PATCH /api/wallets/:id. Only name and type are
// user-mutable; balance fields in the payload are ignored by construction.
func (h *WalletHandler) UpdateWallet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	id, ok := idParam(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "Invalid wallet id")
		return
	}

	var req updateWalletReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid wallet payload")
		return
	}

	wallet, err := h.Ledger.UpdateWallet(id, user.ID, ledger.WalletPatch{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// DeleteWallet handles DELETE /api/wallets/:id.
func (h *WalletHandler) DeleteWallet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	id, ok := idParam(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "Invalid wallet id")
		return
	}

	if err := h.Ledger.DeleteWallet(id, user.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
