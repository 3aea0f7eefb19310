package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a caller whether a failed statement is worth
// repeating.
type ErrorClassification int

const (
	// NonRetryable is returned for constraint violations, bad SQL, data
	// errors and anything that is not recognised.
	NonRetryable ErrorClassification = iota
	// Retryable is returned for transient failures: lost connections,
	// rolled back transactions and a server that is starting or out of
	// resources.
	Retryable
)

// PostgresErrorClassifier classifies errors returned through the pgx driver
// by SQLSTATE class.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its code.
// driver.ErrBadConn is always retryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}
	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}
	return NonRetryable
}

// ClassifyPgError classifies a PostgreSQL error code.
//
// Retryable: class 08 (connection exception), class 40 (transaction
// rollback, including serialization failures and deadlocks), class 53
// (insufficient resources) and the 57P01..57P03 shutdown/startup codes.
// Everything else is NonRetryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code):
		return Retryable
	}

	switch code {
	case pgerrcode.AdminShutdown, pgerrcode.CrashShutdown, pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
