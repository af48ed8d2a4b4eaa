package handler

import (
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/A-M-Ahmed/fintrack-finance/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// passwordCooldown is the minimum interval between password changes.
const passwordCooldown = 3 * 24 * time.Hour

type updateProfileReq struct {
	Name     string `json:"name" binding:"omitempty,min=2,max=64"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=64"`
}

// UpdateProfile updates the current user's display name and currency.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, "Not authorized")
			return
		}

		var req updateProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid profile payload")
			return
		}

		updates := map[string]interface{}{}
		if name := strings.TrimSpace(req.Name); name != "" {
			updates["name"] = name
		}
		if req.Currency != "" {
			updates["currency"] = strings.ToUpper(req.Currency)
		}
		if len(updates) > 0 {
			if err := db.Model(user).Updates(updates).Error; err != nil {
				util.Error(c, http.StatusInternalServerError, "Server error")
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"currency": user.Currency,
		})
	}
}

// ChangePassword changes the current user's password, enforcing the
// rotation cooldown before touching anything.
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, "Not authorized")
			return
		}

		var req changePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid password payload")
			return
		}

		lastChange := user.CreatedAt
		if user.LastPasswordChange != nil {
			lastChange = *user.LastPasswordChange
		}
		if elapsed := time.Since(lastChange); elapsed < passwordCooldown {
			daysLeft := int(math.Ceil((passwordCooldown - elapsed).Hours() / 24))
			util.Error(c, http.StatusForbidden,
				fmt.Sprintf("Security: You can change your password again in %d days.", daysLeft))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			util.Error(c, http.StatusBadRequest, "Invalid current password")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, "Server error")
			return
		}

		now := time.Now()
		if err := db.Model(user).Updates(map[string]interface{}{
			"password_hash":        string(hash),
			"last_password_change": now,
		}).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, "Server error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
	}
}
