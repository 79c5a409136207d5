package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	sessionport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/session"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/paper-trader/internal/domain/usecase/portfolio"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/hasher"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/quote"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/session"
	timeProvider "github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// Session store drivers
const (
	sessionDriverRedis  = "redis"
	sessionDriverMemory = "memory"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Service:    cfg.Logger.Service,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Database
	dbManager := database.NewManager(database.FromAppConfig(cfg.Database, cfg.Logger.Level), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	migrateCtx, cancelMigrate := dbManager.WithTimeout(context.Background())
	err = dbManager.Migrate(migrateCtx)
	cancelMigrate()
	if err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)

	// Sessions
	sessions, closeSessions, err := newSessionStore(cfg.Session, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to create session store", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer closeSessions()

	// Use cases
	startingCash, err := entity.ParseCents(cfg.Trading.StartingCash)
	if err != nil {
		appLogger.Error("Invalid starting cash", map[string]any{
			"value": cfg.Trading.StartingCash,
			"error": err.Error(),
		})
		os.Exit(1)
	}

	accountUseCase := account.NewAccountUseCase(userRepo, hasher.NewBcryptHasher(hasher.DefaultCost), tp, appLogger, startingCash)

	quoteClient := quote.NewIEXClient(quote.Config{
		BaseURL: cfg.Quote.BaseURL,
		APIKey:  cfg.Quote.APIKey,
		Timeout: cfg.Quote.Timeout,
	}, appLogger)

	portfolioUseCase := portfolio.NewPortfolioUseCase(uow, quoteClient, tp, appLogger, portfolio.Options{
		MaxConcurrentLookups:   cfg.Quote.MaxConcurrentLookups,
		RequireHoldingsForSell: cfg.Trading.RequireHoldingsForSell,
		QueueSize:              cfg.Trading.QueueSize,
	})

	// HTTP
	router := gin.New()
	if err := routes.SetupViews(router); err != nil {
		appLogger.Error("Failed to set up views", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router,
		handler.NewPortfolioHandler(portfolioUseCase, appLogger),
		handler.NewAuthHandler(accountUseCase, sessions, handler.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
			TTL:    cfg.Session.TTL,
		}, appLogger),
		handler.NewHealthHandler(dbManager, cfg.Database.QueryTimeout, appLogger),
		middleware.RequireSession(sessions, cfg.Session.CookieName, appLogger),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":           server.Addr,
			"env":            cfg.Environment,
			"db_driver":      cfg.Database.Driver,
			"session_driver": cfg.Session.Driver,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Server stopped unexpectedly", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Draining trade queues...", nil)
	portfolioUseCase.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// newSessionStore builds the configured session store and a func releasing its resources
func newSessionStore(cfg config.SessionConfig, tp coreport.TimeProvider, appLogger coreport.Logger) (sessionport.Store, func(), error) {
	switch strings.ToLower(cfg.Driver) {
	case sessionDriverRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				appLogger.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
			}
		}
		return session.NewRedisStore(client, cfg.KeyPrefix, cfg.TTL, appLogger), closeFn, nil
	case sessionDriverMemory, "":
		return session.NewMemoryStore(cfg.TTL, tp), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session driver %q", cfg.Driver)
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch strings.ToLower(cfg.Database.Driver) {
	case database.DriverPostgres:
		required := map[string]string{
			"database.host (or PT_DB_HOST)":         cfg.Database.Host,
			"database.port (or PT_DB_PORT)":         cfg.Database.Port,
			"database.username (or PT_DB_USERNAME)": cfg.Database.Username,
			"database.password (or PT_DB_PASSWORD)": cfg.Database.Password,
			"database.database (or PT_DB_NAME)":     cfg.Database.Database,
		}
		for name, value := range required {
			if value == "" {
				missingConfigs = append(missingConfigs, name)
			}
		}
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path (or PT_DB_PATH)")
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be %s or %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Session.CookieName == "" {
		missingConfigs = append(missingConfigs, "session.cookieName")
	}
	if strings.EqualFold(cfg.Session.Driver, sessionDriverRedis) && cfg.Session.RedisAddr == "" {
		missingConfigs = append(missingConfigs, "session.redisAddr (or PT_REDIS_ADDR)")
	}

	if cfg.Quote.BaseURL == "" {
		missingConfigs = append(missingConfigs, "quote.baseURL (or PT_QUOTE_BASE_URL)")
	}
	if cfg.Quote.APIKey == "" && cfg.Environment != config.Test {
		missingConfigs = append(missingConfigs, "quote.apiKey (or PT_API_KEY)")
	}

	if cfg.Trading.StartingCash == "" {
		missingConfigs = append(missingConfigs, "trading.startingCash")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverPostgres {
			mode := strings.ToLower(cfg.Database.SSLMode)
			if mode != "require" && mode != "verify-ca" && mode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if !cfg.Session.CookieSecure {
			warnings = append(warnings, "session.cookieSecure should be enabled in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
