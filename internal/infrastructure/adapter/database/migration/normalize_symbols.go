package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
	"gorm.io/gorm"
)

// NormalizeSymbols upper-cases and trims ticker symbols written before
// symbols were normalized on input, so that holdings aggregate per ticker.
type NormalizeSymbols struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewNormalizeSymbols creates a new migration instance
func NewNormalizeSymbols(db *gorm.DB, logger coreport.Logger) *NormalizeSymbols {
	return &NormalizeSymbols{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *NormalizeSymbols) Run(ctx context.Context) error {
	m.logger.Info("Normalizing ledger symbols", nil)

	result := m.db.WithContext(ctx).Exec(`
		UPDATE transactions
		SET symbol = UPPER(TRIM(symbol))
		WHERE symbol <> UPPER(TRIM(symbol))
	`)
	if result.Error != nil {
		m.logger.Error("Failed to normalize symbols", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Ledger symbols normalized", map[string]any{"rows": result.RowsAffected})
	return nil
}
