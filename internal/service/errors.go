package service

import "errors"

var (
	ErrEmailAlreadyExists      = errors.New("email already exists")
	ErrUserNotFound            = errors.New("user was not found")
	ErrUserNotCreated          = errors.New("user was not created")
	ErrWrongPassword           = errors.New("wrong password")
	ErrLoginFailed             = errors.New("login failed")
	ErrLogoutFailed            = errors.New("logout failed")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrMissingAbility          = errors.New("token does not carry the required ability")
)

var (
	// ErrCoordinatesUnavailable is returned when neither the origin nor the
	// destination address could be geocoded.
	ErrCoordinatesUnavailable   = errors.New("coordinates could not be obtained")
	ErrShipmentNotCreated       = errors.New("shipment was not created")
	ErrShipmentNotFound         = errors.New("shipment was not found")
	ErrShipmentStatusNotUpdated = errors.New("shipment status was not updated")
	ErrShipmentsNotRetrieved    = errors.New("shipments were not retrieved")
	ErrSystemLogsNotRetrieved   = errors.New("system logs were not retrieved")

	// ErrNoRecords is returned by listings that matched nothing.
	ErrNoRecords = errors.New("no records found")
)

var (
	ErrAuditEntryNotQueued = errors.New("audit entry was not queued")
	ErrRateLimitExceeded   = errors.New("rate limit exceeded")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
