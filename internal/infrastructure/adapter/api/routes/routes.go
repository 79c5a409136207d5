package routes

import (
	"fmt"

	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes of the site
func SetupRoutes(
	router *gin.Engine,
	portfolioHandler *handler.PortfolioHandler,
	authHandler *handler.AuthHandler,
	healthHandler *handler.HealthHandler,
	requireSession gin.HandlerFunc,
) {
	router.GET("/healthz", healthHandler.Healthz)

	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)

	site := router.Group("/", requireSession)
	{
		site.GET("/", portfolioHandler.Index)
		site.GET("/buy", portfolioHandler.ShowBuy)
		site.POST("/buy", portfolioHandler.Buy)
		site.GET("/sell", portfolioHandler.ShowSell)
		site.POST("/sell", portfolioHandler.Sell)
		site.GET("/history", portfolioHandler.History)
		site.GET("/quote", portfolioHandler.ShowQuote)
		site.POST("/quote", portfolioHandler.Quote)
	}
}

// SetupMiddlewares configures global middlewares
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Logger runs outermost so it sees the status written by ErrorHandler
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.NoCache())
}

// SetupViews loads the page templates and the form validators
func SetupViews(router *gin.Engine) error {
	tmpl, err := view.Templates()
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("registering validators: %w", err)
	}
	return nil
}
