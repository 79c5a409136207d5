package middleware

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// publicMessages lists the messages shown to users, most specific first.
// Anything not listed is reported as an internal error.
var publicMessages = []struct {
	err     error
	message string
}{
	{errs.ErrPasswordMismatch, "passwords do not match"},
	{errs.ErrAmountOverflow, "amount is too large"},
	{errs.ErrInsufficientFunds, "can't afford"},
	{errs.ErrInsufficientShares, "too many shares"},
	{errs.ErrUnknownSymbol, "invalid symbol"},
	{errs.ErrInvalidSymbol, "invalid symbol"},
	{errs.ErrInvalidInput, "invalid input"},
	{errs.ErrDuplicateUsername, "username taken"},
	{errs.ErrAuthenticationFailed, "invalid username and/or password"},
	{errs.ErrNotFound, "not found"},
	{errs.ErrUserLocked, "too many requests in flight, try again"},
	{errs.ErrProviderUnavailable, "quote service unavailable, try again later"},
}

// PublicMessage returns the user-facing text for an error
func PublicMessage(err error) string {
	for _, m := range publicMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return "internal server error"
}

// RenderApology writes the apology page for err
func RenderApology(c *gin.Context, err error) {
	status := errs.HTTPStatus(err)
	_, loggedIn := UserID(c)
	c.HTML(status, view.PageApology, view.Page{
		Title:    "Apology",
		LoggedIn: loggedIn,
		Code:     status,
		Message:  PublicMessage(err),
	})
}

// ErrorHandler renders errors attached by handlers with c.Error and
// recovers from panics. Both end on the apology page.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered in request", map[string]any{
					"error":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
					"user_agent": c.Request.UserAgent(),
				})
				c.Abort()
				RenderApology(c, errs.ErrInternalServer)
			}
		}()

		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		err := last.Err
		if status := errs.HTTPStatus(err); status >= http.StatusInternalServerError {
			logger.Error("Request failed", map[string]any{
				"error":  err.Error(),
				"status": status,
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
		}
		RenderApology(c, err)
	}
}
