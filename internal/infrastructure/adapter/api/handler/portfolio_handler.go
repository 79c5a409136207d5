package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// PortfolioHandler serves the trading pages
type PortfolioHandler struct {
	portfolio usecase.PortfolioUseCase
	logger    coreport.Logger
}

// NewPortfolioHandler creates a new portfolio handler instance
func NewPortfolioHandler(portfolio usecase.PortfolioUseCase, logger coreport.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		portfolio: portfolio,
		logger:    logger,
	}
}

// Index handles GET /
func (h *PortfolioHandler) Index(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	p, err := h.portfolio.GetPortfolio(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, view.PageIndex, view.Page{Title: "Portfolio", LoggedIn: true, Portfolio: p})
}

// ShowBuy handles GET /buy
func (h *PortfolioHandler) ShowBuy(c *gin.Context) {
	c.HTML(http.StatusOK, view.PageBuy, view.Page{Title: "Buy", LoggedIn: true})
}

// Buy handles POST /buy
func (h *PortfolioHandler) Buy(c *gin.Context) {
	h.trade(c, h.portfolio.Buy)
}

// ShowSell handles GET /sell and lists the symbols the user holds
func (h *PortfolioHandler) ShowSell(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	holdings, err := h.portfolio.SellableHoldings(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, view.PageSell, view.Page{Title: "Sell", LoggedIn: true, Holdings: holdings})
}

// Sell handles POST /sell
func (h *PortfolioHandler) Sell(c *gin.Context) {
	h.trade(c, h.portfolio.Sell)
}

type tradeFunc func(ctx context.Context, req usecase.TradeRequest) (*entity.Transaction, error)

func (h *PortfolioHandler) trade(c *gin.Context, execute tradeFunc) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var form dto.TradeForm
	if err := bindForm(c, &form); err != nil {
		h.logger.Debug("Invalid trade form", map[string]any{
			"user_id": userID,
			"path":    c.Request.URL.Path,
			"error":   err.Error(),
		})
		fail(c, err)
		return
	}

	if _, err := execute(c.Request.Context(), usecase.TradeRequest{
		UserID: userID,
		Symbol: form.Symbol,
		Shares: form.Shares,
	}); err != nil {
		fail(c, err)
		return
	}

	redirectHome(c)
}

// History handles GET /history
func (h *PortfolioHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	history, err := h.portfolio.GetHistory(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, view.PageHistory, view.Page{Title: "History", LoggedIn: true, History: history})
}

// ShowQuote handles GET /quote
func (h *PortfolioHandler) ShowQuote(c *gin.Context) {
	c.HTML(http.StatusOK, view.PageQuote, view.Page{Title: "Quote", LoggedIn: true})
}

// Quote handles POST /quote
func (h *PortfolioHandler) Quote(c *gin.Context) {
	var form dto.QuoteForm
	if err := bindForm(c, &form); err != nil {
		fail(c, err)
		return
	}

	q, err := h.portfolio.Quote(c.Request.Context(), form.Symbol)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, view.PageQuoted, view.Page{Title: "Quoted", LoggedIn: true, Quote: q})
}
