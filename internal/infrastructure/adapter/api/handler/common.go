package handler

import (
	"fmt"
	"net/http"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindForm decodes a url-encoded body into form, reporting failures as invalid input
func bindForm(c *gin.Context, form any) error {
	if err := c.ShouldBindWith(form, binding.Form); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidInput, err)
	}
	return nil
}

// currentUser returns the session's user, redirecting to login when there is none
func currentUser(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.LoginPath)
		c.Abort()
	}
	return userID, ok
}

// fail hands err to the error middleware, which renders the apology page
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
