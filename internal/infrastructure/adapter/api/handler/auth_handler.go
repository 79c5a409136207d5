package handler

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/session"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// CookieConfig describes the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// AuthHandler serves registration, login and logout
type AuthHandler struct {
	accounts usecase.AccountUseCase
	sessions session.Store
	cookie   CookieConfig
	logger   coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	accounts usecase.AccountUseCase,
	sessions session.Store,
	cookie CookieConfig,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
		cookie:   cookie,
		logger:   logger,
	}
}

// ShowLogin handles GET /login. Any existing session is ended first.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.endSession(c)
	c.HTML(http.StatusOK, view.PageLogin, view.Page{Title: "Log In"})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	h.endSession(c)

	var form dto.LoginForm
	if err := bindForm(c, &form); err != nil {
		fail(c, err)
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		fail(c, err)
		return
	}
	redirectHome(c)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.endSession(c)
	redirectHome(c)
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, view.PageRegister, view.Page{Title: "Register"})
}

// Register handles POST /register and logs the new user in
func (h *AuthHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := bindForm(c, &form); err != nil {
		fail(c, err)
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), usecase.RegisterRequest{
		Username:     form.Username,
		Password:     form.Password,
		Confirmation: form.Confirmation,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		fail(c, err)
		return
	}
	redirectHome(c)
}

func (h *AuthHandler) startSession(c *gin.Context, userID uint64) error {
	token, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}

	maxAge := 0
	if h.cookie.TTL > 0 {
		maxAge = int(h.cookie.TTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)
	return nil
}

// endSession destroys the current session, if any, and expires the cookie
func (h *AuthHandler) endSession(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Name)
	if err != nil || token == "" {
		return
	}

	if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
		h.logger.Warn("Failed to destroy session", map[string]any{"error": err.Error()})
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}
