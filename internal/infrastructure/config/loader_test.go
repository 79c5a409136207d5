package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, env, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("should apply defaults when no file exists", func(t *testing.T) {
		// Act
		cfg, err := LoadConfigFrom(Test, []string{t.TempDir()})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, "memory", cfg.Session.Driver)
		assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
		assert.Equal(t, 5*time.Second, cfg.Quote.Timeout)
		assert.Equal(t, "10000.00", cfg.Trading.StartingCash)
		assert.False(t, cfg.Trading.RequireHoldingsForSell)
	})

	t.Run("should read the environment file", func(t *testing.T) {
		// Arrange
		dir := writeConfig(t, Production, `
server:
  port: 9090
database:
  driver: postgres
  host: db
  database: trader
session:
  driver: redis
  ttl: 30
quote:
  timeout: 2
trading:
  startingCash: "500.50"
  requireHoldingsForSell: true
`)

		// Act
		cfg, err := LoadConfigFrom(Production, []string{dir})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "db", cfg.Database.Host)
		assert.Equal(t, "redis", cfg.Session.Driver)
		assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
		assert.Equal(t, 2*time.Second, cfg.Quote.Timeout)
		assert.Equal(t, "500.50", cfg.Trading.StartingCash)
		assert.True(t, cfg.Trading.RequireHoldingsForSell)
	})

	t.Run("should let the environment override the file", func(t *testing.T) {
		// Arrange
		dir := writeConfig(t, Development, `
database:
  password: from-file
quote:
  apiKey: from-file
`)
		t.Setenv("PT_DB_PASSWORD", "from-env")
		t.Setenv("PT_API_KEY", "secret")
		t.Setenv("PT_SERVER_PORT", "7070")
		t.Setenv("PT_REQUIRE_HOLDINGS_FOR_SELL", "true")

		// Act
		cfg, err := LoadConfigFrom(Development, []string{dir})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Database.Password)
		assert.Equal(t, "secret", cfg.Quote.APIKey)
		assert.Equal(t, 7070, cfg.Server.Port)
		assert.True(t, cfg.Trading.RequireHoldingsForSell)
	})

	t.Run("should fail on a malformed file", func(t *testing.T) {
		dir := writeConfig(t, Test, "server: [unterminated")

		_, err := LoadConfigFrom(Test, []string{dir})

		assert.Error(t, err)
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("PT_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("PT_ENV", "PRODUCTION")
	assert.Equal(t, Production, getEnvironment())
}
