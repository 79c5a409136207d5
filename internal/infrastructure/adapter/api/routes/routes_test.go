package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/logger"
	msession "github.com/amirhossein-jamali/paper-trader/mocks/port/session"
	musecase "github.com/amirhossein-jamali/paper-trader/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	cookieName = "session"
	token      = "valid-token"
	userID     = uint64(7)
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testSite struct {
	router    *gin.Engine
	portfolio *musecase.MockPortfolioUseCase
	accounts  *musecase.MockAccountUseCase
	sessions  *msession.MockStore
	pinger    *fakePinger
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testSite{
		router:    gin.New(),
		portfolio: new(musecase.MockPortfolioUseCase),
		accounts:  new(musecase.MockAccountUseCase),
		sessions:  new(msession.MockStore),
		pinger:    &fakePinger{},
	}
	s.sessions.On("Resolve", mock.Anything, token).Return(userID, nil).Maybe()
	s.sessions.On("Resolve", mock.Anything, mock.Anything).Return(uint64(0), errs.ErrSessionNotFound).Maybe()

	log := logger.NewNoopLogger()
	require.NoError(t, SetupViews(s.router))
	SetupMiddlewares(s.router, log)
	SetupRoutes(s.router,
		handler.NewPortfolioHandler(s.portfolio, log),
		handler.NewAuthHandler(s.accounts, s.sessions, handler.CookieConfig{Name: cookieName, TTL: time.Hour}, log),
		handler.NewHealthHandler(s.pinger, time.Second, log),
		middleware.RequireSession(s.sessions, cookieName, log),
	)

	t.Cleanup(func() {
		s.portfolio.AssertExpectations(t)
		s.accounts.AssertExpectations(t)
	})
	return s
}

func (s *testSite) do(method, path string, form url.Values, loggedIn bool) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if loggedIn {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestProtectedPagesRequireSession(t *testing.T) {
	s := newTestSite(t)

	for _, path := range []string{"/", "/buy", "/sell", "/history", "/quote"} {
		t.Run(path, func(t *testing.T) {
			w := s.do(http.MethodGet, path, nil, false)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/login", w.Header().Get("Location"))
		})
	}

	t.Run("Unknown token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: "stale"})
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
	})
}

func TestIndex(t *testing.T) {
	s := newTestSite(t)
	p, err := entity.NewPortfolio(userID, []entity.PortfolioRow{
		{Symbol: "AAPL", Name: "Apple Inc.", Shares: 6, PriceCents: 16_000, ValueCents: 96_000, Priced: true},
	}, 914_000)
	require.NoError(t, err)
	s.portfolio.On("GetPortfolio", mock.Anything, userID).Return(p, nil)

	w := s.do(http.MethodGet, "/", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Apple Inc.")
	assert.Contains(t, w.Body.String(), "$10,100.00")
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
}

func TestBuy(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		setupMocks     func(*testSite)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Successful buy redirects home",
			form: url.Values{"symbol": {"aapl"}, "num_shares": {"10"}},
			setupMocks: func(s *testSite) {
				s.portfolio.On("Buy", mock.Anything, usecase.TradeRequest{UserID: userID, Symbol: "aapl", Shares: 10}).
					Return(&entity.Transaction{ID: 1}, nil)
			},
			expectedStatus: http.StatusFound,
		},
		{
			name:           "Non-numeric shares",
			form:           url.Values{"symbol": {"AAPL"}, "num_shares": {"ten"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid input",
		},
		{
			name:           "Negative shares",
			form:           url.Values{"symbol": {"AAPL"}, "num_shares": {"-1"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid input",
		},
		{
			name:           "Missing symbol",
			form:           url.Values{"num_shares": {"1"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid input",
		},
		{
			name: "Insufficient funds",
			form: url.Values{"symbol": {"AAPL"}, "num_shares": {"1000"}},
			setupMocks: func(s *testSite) {
				s.portfolio.On("Buy", mock.Anything, mock.Anything).
					Return(nil, errs.NewInsufficientFundsError(userID, "150000.00", "10000.00"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "can&#39;t afford",
		},
		{
			name: "Unknown symbol",
			form: url.Values{"symbol": {"ZZZZ"}, "num_shares": {"1"}},
			setupMocks: func(s *testSite) {
				s.portfolio.On("Buy", mock.Anything, mock.Anything).Return(nil, errs.ErrUnknownSymbol)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid symbol",
		},
		{
			name: "Provider down",
			form: url.Values{"symbol": {"AAPL"}, "num_shares": {"1"}},
			setupMocks: func(s *testSite) {
				s.portfolio.On("Buy", mock.Anything, mock.Anything).Return(nil, errs.ErrProviderUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSite(t)
			if tt.setupMocks != nil {
				tt.setupMocks(s)
			}

			w := s.do(http.MethodPost, "/buy", tt.form, true)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusFound {
				assert.Equal(t, "/", w.Header().Get("Location"))
			}
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestSell(t *testing.T) {
	t.Run("Form lists holdings", func(t *testing.T) {
		s := newTestSite(t)
		s.portfolio.On("SellableHoldings", mock.Anything, userID).
			Return([]entity.Holding{{Symbol: "AAPL", Shares: 6}}, nil)

		w := s.do(http.MethodGet, "/sell", nil, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<option value="AAPL">AAPL (6)</option>`)
	})

	t.Run("Sell redirects home", func(t *testing.T) {
		s := newTestSite(t)
		s.portfolio.On("Sell", mock.Anything, usecase.TradeRequest{UserID: userID, Symbol: "AAPL", Shares: 4}).
			Return(&entity.Transaction{ID: 2}, nil)

		w := s.do(http.MethodPost, "/sell", url.Values{"symbol": {"AAPL"}, "num_shares": {"4"}}, true)

		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("Too many shares", func(t *testing.T) {
		s := newTestSite(t)
		s.portfolio.On("Sell", mock.Anything, mock.Anything).Return(nil, errs.ErrInsufficientShares)

		w := s.do(http.MethodPost, "/sell", url.Values{"symbol": {"AAPL"}, "num_shares": {"40"}}, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "too many shares")
	})
}

func TestHistory(t *testing.T) {
	s := newTestSite(t)
	at := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	s.portfolio.On("GetHistory", mock.Anything, userID).Return([]entity.HistoryEntry{
		entity.NewHistoryEntry(entity.Transaction{ID: 1, Symbol: "AAPL", Shares: 10, PriceCents: 15_000, CreatedAt: at}),
	}, nil)

	w := s.do(http.MethodGet, "/history", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "$1,500.00")
}

func TestQuote(t *testing.T) {
	t.Run("Known symbol", func(t *testing.T) {
		s := newTestSite(t)
		s.portfolio.On("Quote", mock.Anything, "aapl").
			Return(&entity.Quote{Symbol: "AAPL", Name: "Apple Inc.", PriceCents: 15_000}, nil)

		w := s.do(http.MethodPost, "/quote", url.Values{"symbol": {"aapl"}}, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "A share of Apple Inc. (AAPL) costs $150.00.")
	})

	t.Run("Unknown symbol", func(t *testing.T) {
		s := newTestSite(t)
		s.portfolio.On("Quote", mock.Anything, "ZZZZ").Return(nil, errs.ErrInvalidSymbol)

		w := s.do(http.MethodPost, "/quote", url.Values{"symbol": {"ZZZZ"}}, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid symbol")
	})
}

func TestLogin(t *testing.T) {
	t.Run("Valid credentials start a session", func(t *testing.T) {
		s := newTestSite(t)
		s.accounts.On("Authenticate", mock.Anything, "alice", "secret").Return(&entity.User{ID: userID}, nil)
		s.sessions.On("Create", mock.Anything, userID).Return("new-token", nil)

		w := s.do(http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"secret"}}, false)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		cookie := w.Header().Get("Set-Cookie")
		assert.Contains(t, cookie, "session=new-token")
		assert.Contains(t, cookie, "HttpOnly")
		assert.Contains(t, cookie, "SameSite=Lax")
	})

	t.Run("Wrong password", func(t *testing.T) {
		s := newTestSite(t)
		s.accounts.On("Authenticate", mock.Anything, "alice", "nope").Return(nil, errs.ErrAuthenticationFailed)

		w := s.do(http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"nope"}}, false)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "invalid username and/or password")
		s.sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Existing session is ended", func(t *testing.T) {
		s := newTestSite(t)
		s.sessions.On("Destroy", mock.Anything, token).Return(nil)

		w := s.do(http.MethodGet, "/login", nil, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
		s.sessions.AssertCalled(t, "Destroy", mock.Anything, token)
	})
}

func TestRegister(t *testing.T) {
	form := url.Values{"username": {"bob"}, "password": {"pw"}, "confirmation": {"pw"}}

	t.Run("New user is logged in", func(t *testing.T) {
		s := newTestSite(t)
		s.accounts.On("Register", mock.Anything, usecase.RegisterRequest{Username: "bob", Password: "pw", Confirmation: "pw"}).
			Return(&entity.User{ID: 9}, nil)
		s.sessions.On("Create", mock.Anything, uint64(9)).Return("bob-token", nil)

		w := s.do(http.MethodPost, "/register", form, false)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "session=bob-token")
	})

	t.Run("Passwords differ", func(t *testing.T) {
		s := newTestSite(t)
		s.accounts.On("Register", mock.Anything, mock.Anything).Return(nil, errs.ErrPasswordMismatch)

		w := s.do(http.MethodPost, "/register",
			url.Values{"username": {"bob"}, "password": {"pw"}, "confirmation": {"other"}}, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "passwords do not match")
	})

	t.Run("Username taken", func(t *testing.T) {
		s := newTestSite(t)
		s.accounts.On("Register", mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateUsername)

		w := s.do(http.MethodPost, "/register", form, false)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "username taken")
	})

	t.Run("Missing confirmation", func(t *testing.T) {
		s := newTestSite(t)

		w := s.do(http.MethodPost, "/register", url.Values{"username": {"bob"}, "password": {"pw"}}, false)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogout(t *testing.T) {
	s := newTestSite(t)
	s.sessions.On("Destroy", mock.Anything, token).Return(nil)

	w := s.do(http.MethodGet, "/logout", nil, true)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	s.sessions.AssertCalled(t, "Destroy", mock.Anything, token)
}

func TestHealthz(t *testing.T) {
	s := newTestSite(t)

	w := s.do(http.MethodGet, "/healthz", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	s.pinger.err = errors.New("connection refused")
	w = s.do(http.MethodGet, "/healthz", nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestErrorHandling(t *testing.T) {
	t.Run("Panic renders apology", func(t *testing.T) {
		s := newTestSite(t)
		s.portfolio.On("GetHistory", mock.Anything, userID).
			Run(func(mock.Arguments) { panic("boom") }).
			Return(nil, nil)

		w := s.do(http.MethodGet, "/history", nil, true)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal server error")
	})

	t.Run("Session store outage", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		require.NoError(t, SetupViews(router))
		SetupMiddlewares(router, logger.NewNoopLogger())

		sessions := new(msession.MockStore)
		sessions.On("Resolve", mock.Anything, token).Return(uint64(0), errs.ErrDatabaseConnection)
		router.GET("/", middleware.RequireSession(sessions, cookieName, logger.NewNoopLogger()), func(c *gin.Context) {
			c.String(http.StatusOK, "unreachable")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "unreachable")
	})
}
