package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/A-M-Ahmed/fintrack-finance/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maxAuditBody caps how much of a request body ends up in the audit trail.
const maxAuditBody = 2000

// AuditMiddleware records every authenticated mutating request. It never
// fails the request it observes.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		if c.Request.Method == "GET" {
			return
		}

		var userID uint
		if v, ok := c.Get("currentUser"); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}
		if userID == 0 {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		// never persist credential payloads
		if len(bodyBytes) > 0 && len(bodyBytes) < maxAuditBody && !strings.Contains(path, "password") {
			action += " " + string(bodyBytes)
		}

		entry := models.AuditLog{
			UserID:    &userID,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		if err := db.Create(&entry).Error; err != nil {
			slog.Warn("audit write failed", "path", path, "error", err)
		}
	}
}
