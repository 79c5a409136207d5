package database

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	"github.com/amirhossein-jamali/paper-trader/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrorMapper turns driver errors raised outside the repositories, such as
// BEGIN, COMMIT or PING, into domain errors.
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps err for the named operation. Errors that already carry a
// domain classification are returned unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errs.ErrorCode(err) != errs.CodeInternalServer || errors.Is(err, errs.ErrInternalServer) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s timed out", errs.ErrDatabaseConnection, operation)
	}

	switch m.classifier.Classify(err) {
	case repository.DuplicateKeyError:
		return errs.ErrDuplicateUsername
	case repository.ForeignKeyError, repository.CheckError:
		return fmt.Errorf("%w: %s", errs.ErrIntegrityViolation, err.Error())
	case repository.LockError:
		return fmt.Errorf("%w: %s", errs.ErrUserLocked, err.Error())
	case repository.TransientError, repository.ConnectionError:
		return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, operation, err.Error())
	default:
		return fmt.Errorf("%w: %s failed: %s", errs.ErrInternalServer, operation, err.Error())
	}
}
