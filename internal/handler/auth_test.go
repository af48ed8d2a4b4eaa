package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/A-M-Ahmed/fintrack-finance/internal/middleware"
	"github.com/A-M-Ahmed/fintrack-finance/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testJWTSecret = "test-secret"

// authRouter wires the real auth middleware so the full token lifecycle
// can be exercised end to end.
func authRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testDB(t)
	authHandler := NewAuthHandler(db, testJWTSecret, "fintrack-test", 1, bcrypt.MinCost)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.AuthMiddleware(testJWTSecret, db))
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", GetMe)
	protected.POST("/auth/change-password", ChangePassword(db))
	protected.PUT("/auth/profile", UpdateProfile(db))

	return r, db
}

func doJSONAuth(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthFlow(t *testing.T) {
	r, _ := authRouter(t)

	register := gin.H{
		"name":     "Ada Lovelace",
		"email":    "Ada@Example.com",
		"password": "secret123",
	}

	var token string
	t.Run("register", func(t *testing.T) {
		w := doJSONAuth(t, r, "POST", "/api/auth/register", "", register)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
			Token string `json:"token"`
		}
		decode(t, w, &resp)
		assert.Equal(t, "ada@example.com", resp.Email, "email is normalized")
		require.NotEmpty(t, resp.Token)
		token = resp.Token
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := doJSONAuth(t, r, "POST", "/api/auth/register", "", register)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User already exists", errMessage(t, w))
	})

	t.Run("bad email", func(t *testing.T) {
		w := doJSONAuth(t, r, "POST", "/api/auth/register", "", gin.H{
			"name": "No At Sign", "email": "nope", "password": "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("me with token", func(t *testing.T) {
		w := doJSONAuth(t, r, "GET", "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var me struct {
			Email    string `json:"email"`
			Currency string `json:"currency"`
		}
		decode(t, w, &me)
		assert.Equal(t, "ada@example.com", me.Email)
		assert.Equal(t, "USD", me.Currency)
	})

	t.Run("me without token", func(t *testing.T) {
		w := doJSONAuth(t, r, "GET", "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me with garbage token", func(t *testing.T) {
		w := doJSONAuth(t, r, "GET", "/api/auth/me", "not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := doJSONAuth(t, r, "POST", "/api/auth/login", "", gin.H{
			"email": "ada@example.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid credentials", errMessage(t, w))
	})

	t.Run("login", func(t *testing.T) {
		w := doJSONAuth(t, r, "POST", "/api/auth/login", "", gin.H{
			"email": "ADA@example.com", "password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		w := doJSONAuth(t, r, "POST", "/api/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		// the same token is dead now
		w = doJSONAuth(t, r, "GET", "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestChangePassword(t *testing.T) {
	r, db := authRouter(t)

	w := doJSONAuth(t, r, "POST", "/api/auth/register", "", gin.H{
		"name": "Grace Hopper", "email": "grace@example.com", "password": "oldpass1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		ID    uint   `json:"id"`
		Token string `json:"token"`
	}
	decode(t, w, &resp)

	t.Run("cooldown right after signup", func(t *testing.T) {
		w := doJSONAuth(t, r, "POST", "/api/auth/change-password", resp.Token, gin.H{
			"currentPassword": "oldpass1", "newPassword": "newpass1",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	// age the account past the cooldown window
	aged := time.Now().Add(-4 * 24 * time.Hour)
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", resp.ID).
		Update("created_at", aged).Error)

	t.Run("wrong current password", func(t *testing.T) {
		w := doJSONAuth(t, r, "POST", "/api/auth/change-password", resp.Token, gin.H{
			"currentPassword": "nope", "newPassword": "newpass1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		w := doJSONAuth(t, r, "POST", "/api/auth/change-password", resp.Token, gin.H{
			"currentPassword": "oldpass1", "newPassword": "newpass1",
		})
		require.Equal(t, http.StatusOK, w.Code)

		// the new password logs in, the old one does not
		w = doJSONAuth(t, r, "POST", "/api/auth/login", "", gin.H{
			"email": "grace@example.com", "password": "newpass1",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSONAuth(t, r, "POST", "/api/auth/login", "", gin.H{
			"email": "grace@example.com", "password": "oldpass1",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	r, db := authRouter(t)

	w := doJSONAuth(t, r, "POST", "/api/auth/register", "", gin.H{
		"name": "Old Name", "email": "profile@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		ID    uint   `json:"id"`
		Token string `json:"token"`
	}
	decode(t, w, &resp)

	w = doJSONAuth(t, r, "PUT", "/api/auth/profile", resp.Token, gin.H{
		"name": "New Name", "currency": "eur",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, db.First(&user, resp.ID).Error)
	assert.Equal(t, "New Name", user.Name)
	assert.Equal(t, "EUR", user.Currency)
}
