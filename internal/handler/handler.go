package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/A-M-Ahmed/fintrack-finance/internal/ledger"
	"github.com/A-M-Ahmed/fintrack-finance/internal/models"
	"github.com/A-M-Ahmed/fintrack-finance/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser returns the user stored in the context by the auth
// middleware. The false case only happens on wiring mistakes; handlers
// answer it with 401 like any other missing identity.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// fail maps a ledger error to its HTTP status. Anything outside the
// taxonomy is a 500 with no detail leaked to the caller.
func fail(c *gin.Context, err error) {
	var (
		validationErr    *ledger.ValidationError
		notFoundErr      *ledger.NotFoundError
		authorizationErr *ledger.AuthorizationError
		consistencyErr   *ledger.ConsistencyError
	)
	switch {
	case errors.As(err, &validationErr):
		util.Error(c, http.StatusBadRequest, validationErr.Msg)
	case errors.As(err, &notFoundErr):
		util.Error(c, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &authorizationErr):
		util.Error(c, http.StatusUnauthorized, "Not authorized")
	case errors.As(err, &consistencyErr):
		util.Error(c, http.StatusInternalServerError, "Ledger write failed")
	default:
		util.Error(c, http.StatusInternalServerError, "Server error")
	}
}
