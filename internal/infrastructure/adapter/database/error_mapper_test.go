package database

import (
	"context"
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorMapper_MapError(t *testing.T) {
	m := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, want: errs.ErrNotFound},
		{name: "serialization", err: errors.New("could not serialize access"), want: errs.ErrUserLocked},
		{name: "sqlite busy", err: errors.New("database is locked"), want: errs.ErrUserLocked},
		{name: "unique", err: errors.New("UNIQUE constraint failed: users.username"), want: errs.ErrDuplicateUsername},
		{name: "check", err: errors.New("CHECK constraint failed"), want: errs.ErrIntegrityViolation},
		{name: "connection", err: errors.New("dial tcp: connection refused"), want: errs.ErrDatabaseConnection},
		{name: "closed pool", err: errors.New("sql: database is closed"), want: errs.ErrDatabaseConnection},
		{name: "foreign key", err: errors.New("FOREIGN KEY constraint failed"), want: errs.ErrIntegrityViolation},
		{name: "deadline", err: context.DeadlineExceeded, want: errs.ErrDatabaseConnection},
		{name: "unknown", err: errors.New("something odd"), want: errs.ErrInternalServer},
		{name: "domain error passes through", err: errs.ErrInsufficientFunds, want: errs.ErrInsufficientFunds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, m.MapError(tt.err, "test"), tt.want)
		})
	}

	assert.NoError(t, m.MapError(nil, "test"))
}
