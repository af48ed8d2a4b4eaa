package handler

import (
	"net/http"

	"github.com/A-M-Ahmed/fintrack-finance/internal/ledger"
	"github.com/A-M-Ahmed/fintrack-finance/internal/util"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler exposes invoices and the settlement bridge over REST.
type InvoiceHandler struct {
	Ledger *ledger.Service
}

func NewInvoiceHandler(svc *ledger.Service) *InvoiceHandler {
	return &InvoiceHandler{Ledger: svc}
}

type invoiceItemReq struct {
	Name  string  `json:"name" binding:"required"`
	Qty   int     `json:"qty" binding:"required,gt=0"`
	Price float64 `json:"price" binding:"gte=0"`
}

type createInvoiceReq struct {
	InvoiceID  string           `json:"invoiceId" binding:"required"`
	ClientName string           `json:"clientName" binding:"required"`
	Items      []invoiceItemReq `json:"items" binding:"required,min=1,dive"`
	DueDate    string           `json:"dueDate" binding:"required"`
}

type updateInvoiceStatusReq struct {
	Status   string `json:"status" binding:"required,oneof=pending paid overdue"`
	WalletID uint   `json:"walletId"`
	Type     string `json:"type" binding:"omitempty,oneof=income expense"`
}

// CreateInvoice handles POST /api/invoices.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req createInvoiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid invoice payload")
		return
	}

	dueDate, err := util.ParseDate(req.DueDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid due date")
		return
	}

	items := make([]ledger.InvoiceItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ledger.InvoiceItemInput{
			Name:  item.Name,
			Qty:   item.Qty,
			Price: item.Price,
		})
	}

	invoice, err := h.Ledger.CreateInvoice(user.ID, ledger.InvoiceInput{
		InvoiceID:  req.InvoiceID,
		ClientName: req.ClientName,
		Items:      items,
		DueDate:    dueDate,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices handles GET /api/invoices.
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	invoices, err := h.Ledger.ListInvoices(user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoice handles GET /api/invoices/:id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	id, ok := idParam(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "Invalid invoice id")
		return
	}

	invoice, err := h.Ledger.GetInvoice(id, user.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoiceStatus handles PUT /api/invoices/:id/status. Marking an
// invoice as paid settles it: the ledger records the correlated
// transaction and applies the wallet delta in the same unit of work.
func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}
	id, ok := idParam(c)
	if !ok {
		util.Error(c, http.StatusBadRequest, "Invalid invoice id")
		return
	}

	var req updateInvoiceStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid status payload")
		return
	}

	invoice, err := h.Ledger.UpdateInvoiceStatus(id, user.ID, req.Status, req.WalletID, req.Type)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
