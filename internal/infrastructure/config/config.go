package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Session     SessionConfig  `mapstructure:"session"`
	Quote       QuoteConfig    `mapstructure:"quote"`
	Trading     TradingConfig  `mapstructure:"trading"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Path            string        `mapstructure:"path"` // sqlite file or DSN
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`      // seconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds, 0 disables
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"` // json or console
	Service string `mapstructure:"service"`
}

// SessionConfig contains session store and cookie settings
type SessionConfig struct {
	Driver        string        `mapstructure:"driver"` // redis or memory
	RedisAddr     string        `mapstructure:"redisAddr"`
	RedisPassword string        `mapstructure:"redisPassword"`
	RedisDB       int           `mapstructure:"redisDB"`
	KeyPrefix     string        `mapstructure:"keyPrefix"`
	TTL           time.Duration `mapstructure:"ttl"` // minutes
	CookieName    string        `mapstructure:"cookieName"`
	CookieSecure  bool          `mapstructure:"cookieSecure"`
}

// QuoteConfig contains quote provider settings
type QuoteConfig struct {
	BaseURL              string        `mapstructure:"baseURL"`
	APIKey               string        `mapstructure:"apiKey"`
	Timeout              time.Duration `mapstructure:"timeout"` // seconds
	MaxConcurrentLookups int           `mapstructure:"maxConcurrentLookups"`
}

// TradingConfig contains ledger rules
type TradingConfig struct {
	StartingCash           string `mapstructure:"startingCash"` // decimal dollars
	RequireHoldingsForSell bool   `mapstructure:"requireHoldingsForSell"`
	QueueSize              int    `mapstructure:"queueSize"`
}
