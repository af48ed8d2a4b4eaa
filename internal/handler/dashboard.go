package handler

import (
	"net/http"

	"github.com/A-M-Ahmed/fintrack-finance/internal/ledger"
	"github.com/A-M-Ahmed/fintrack-finance/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only summary projection.
type DashboardHandler struct {
	Ledger *ledger.Service
}

func NewDashboardHandler(svc *ledger.Service) *DashboardHandler {
	return &DashboardHandler{Ledger: svc}
}

// GetSummary handles GET /api/dashboard/summary?range=7d|30d|all.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	summary, err := h.Ledger.Summary(user.ID, c.DefaultQuery("range", "30d"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
