package middleware

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/session"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user ID
const UserIDKey = "user_id"

// LoginPath is where unauthenticated requests are sent
const LoginPath = "/login"

// RequireSession resolves the session cookie and redirects to the login page
// when there is no valid session.
func RequireSession(store session.Store, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		userID, err := store.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				logger.Debug("Session not found", map[string]any{"path": c.Request.URL.Path})
				c.Redirect(http.StatusFound, LoginPath)
				c.Abort()
				return
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID set by RequireSession
func UserID(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok && id != 0
}
