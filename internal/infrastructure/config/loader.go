package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "PT"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by PT_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}
	return LoadConfigFrom(getEnvironment(), ConfigPaths)
}

// LoadConfigFrom reads <env>.yaml from the first matching path, applies
// defaults and PT_ environment overrides, and converts raw duration values.
// A missing file is not an error; defaults and environment still apply.
func LoadConfigFrom(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "finance.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)      // seconds
	v.SetDefault("database.monitorInterval", 0) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service", "paper-trader")

	v.SetDefault("session.driver", "memory")
	v.SetDefault("session.redisAddr", "localhost:6379")
	v.SetDefault("session.redisDB", 0)
	v.SetDefault("session.keyPrefix", "session:")
	v.SetDefault("session.ttl", 1440) // minutes
	v.SetDefault("session.cookieName", "session")
	v.SetDefault("session.cookieSecure", false)

	v.SetDefault("quote.baseURL", "https://cloud.iexapis.com/stable")
	v.SetDefault("quote.timeout", 5) // seconds
	v.SetDefault("quote.maxConcurrentLookups", 4)

	v.SetDefault("trading.startingCash", "10000.00")
	v.SetDefault("trading.requireHoldingsForSell", false)
	v.SetDefault("trading.queueSize", 16)
}

// getEnvironment determines the environment from PT_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides lets secrets and deployment settings come from the environment
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"PT_DB_DRIVER":      "database.driver",
		"PT_DB_HOST":        "database.host",
		"PT_DB_PORT":        "database.port",
		"PT_DB_USERNAME":    "database.username",
		"PT_DB_PASSWORD":    "database.password",
		"PT_DB_NAME":        "database.database",
		"PT_DB_SSL_MODE":    "database.sslMode",
		"PT_DB_PATH":        "database.path",
		"PT_SERVER_HOST":    "server.host",
		"PT_LOGGER_LEVEL":   "logger.level",
		"PT_SESSION_DRIVER": "session.driver",
		"PT_REDIS_ADDR":     "session.redisAddr",
		"PT_REDIS_PASSWORD": "session.redisPassword",
		"PT_QUOTE_BASE_URL": "quote.baseURL",
		"PT_API_KEY":        "quote.apiKey",
		"PT_STARTING_CASH":  "trading.startingCash",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"PT_SERVER_PORT":                  "server.port",
		"PT_DB_MAX_OPEN_CONNS":            "database.maxOpenConns",
		"PT_DB_MAX_IDLE_CONNS":            "database.maxIdleConns",
		"PT_DB_QUERY_TIMEOUT_SECONDS":     "database.queryTimeout",
		"PT_DB_RETRY_ATTEMPTS":            "database.retryAttempts",
		"PT_SESSION_TTL_MINUTES":          "session.ttl",
		"PT_QUOTE_TIMEOUT_SECONDS":        "quote.timeout",
		"PT_QUOTE_MAX_CONCURRENT_LOOKUPS": "quote.maxConcurrentLookups",
	}
	for env, key := range intOverrides {
		if val, ok := getEnvInt(env); ok && val >= 0 {
			v.Set(key, val)
		}
	}

	if val, ok := os.LookupEnv("PT_REQUIRE_HOLDINGS_FOR_SELL"); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			v.Set("trading.requireHoldingsForSell", b)
		}
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string) (int, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return 0, false
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, false
	}
	return val, true
}

// processDurations converts raw unit counts decoded from the file into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second
	config.Database.MonitorInterval = config.Database.MonitorInterval * time.Second

	config.Session.TTL = config.Session.TTL * time.Minute
	config.Quote.Timeout = config.Quote.Timeout * time.Second
}
