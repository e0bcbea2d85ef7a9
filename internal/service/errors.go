package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsTransient reports whether a failed read may succeed when retried.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "53300", "57P01":
			// serialization_failure, deadlock_detected, too_many_connections,
			// admin_shutdown
			return true
		}
	}
	return false
}
