package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoDatabase is returned by Storages.Ping when no database
	// connection was opened.
	ErrNoDatabase = errors.New("no database connection")

	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrShipmentNotFound is returned when a lookup or update targets a
	// shipment that does not exist or has been soft-deleted.
	ErrShipmentNotFound = errors.New("shipment was not found")

	// ErrTrackingNumberTaken is returned when an INSERT collides with an
	// existing tracking number.
	ErrTrackingNumberTaken = errors.New("tracking number is already taken")

	// ErrTokenNotFound is returned when an access token row does not exist,
	// usually because it was revoked.
	ErrTokenNotFound = errors.New("access token was not found")

	// ErrAuditJobNotFound is returned when an audit job was already delivered
	// or dropped by another dispatcher.
	ErrAuditJobNotFound = errors.New("audit job was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a JSON column value cannot be encoded
	// or decoded.
	ErrEncodingJSON = errors.New("failed to encode json column")
)
