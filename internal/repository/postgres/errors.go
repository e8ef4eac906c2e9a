package postgres

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"

	"go4rent-backend/internal/domain"
)

// IsRetryableError reports whether err is a transaction conflict that can
// succeed when the whole transaction runs again.
func IsRetryableError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgerrcode.UniqueViolation
}

// notFound maps sql.ErrNoRows onto the given domain error.
func notFound(err error, target *domain.Error, id int32) error {
	if errors.Is(err, sql.ErrNoRows) {
		return target.WithEntity(id)
	}
	return err
}
