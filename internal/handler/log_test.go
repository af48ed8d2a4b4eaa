package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/A-M-Ahmed/fintrack-finance/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLogs(t *testing.T) {
	db := testDB(t)
	user := models.User{Name: "Log Test", Email: "logs@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	for i := 0; i < 25; i++ {
		entry := models.AuditLog{
			UserID: &user.ID,
			Method: "POST",
			Path:   "/api/wallets",
			Action: fmt.Sprintf("POST /api/wallets entry-%d", i),
		}
		require.NoError(t, db.Create(&entry).Error)
	}
	// one entry for somebody else
	other := models.User{Name: "Other", Email: "other-logs@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)
	foreign := models.AuditLog{UserID: &other.ID, Method: "POST", Path: "/api/invoices", Action: "POST /api/invoices foreign"}
	require.NoError(t, db.Create(&foreign).Error)

	logHandler := NewLogHandler(db)
	r := gin.New()
	r.GET("/api/logs", asUser(&user), logHandler.ListLogs)

	type page struct {
		Items []struct {
			Action string `json:"action"`
		} `json:"items"`
		Total int64 `json:"total"`
		Page  int   `json:"page"`
		Size  int   `json:"size"`
	}

	t.Run("default pagination", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/logs", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp page
		decode(t, w, &resp)
		assert.EqualValues(t, 25, resp.Total, "foreign entries are invisible")
		assert.Len(t, resp.Items, 20)
		assert.Equal(t, 1, resp.Page)
	})

	t.Run("second page", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/logs?page=2&pageSize=20", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp page
		decode(t, w, &resp)
		assert.Len(t, resp.Items, 5)
	})

	t.Run("keyword search", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/logs?q=entry-7", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp page
		decode(t, w, &resp)
		require.EqualValues(t, 1, resp.Total)
		assert.Contains(t, resp.Items[0].Action, "entry-7")
	})

	t.Run("bad date window", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/api/logs?start=yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
