package validators

import "math"

// Field names accepted by [RequestValidator.Validate] to restrict validation
// to a subset of a request's fields.
const (
	FieldName               = "name"
	FieldEmail              = "email"
	FieldRole               = "role"
	FieldPassword           = "password"
	FieldSenderName         = "senderName"
	FieldReceiverName       = "receiverName"
	FieldOriginAddress      = "originAddress"
	FieldDestinationAddress = "destinationAddress"
	FieldStatus             = "status"
	FieldPage               = "page"
	FieldLimit              = "limit"
	FieldShipmentID         = "shipmentId"
	FieldTrackingNumber     = "trackingNumber"
)

const (
	maxStringLength   = 255
	minPasswordLength = 8
	maxPasswordLength = 72
	maxListLimit      = 100

	// maxListPage keeps (page-1)*limit within the int64 range of SQL OFFSET.
	maxListPage = math.MaxInt64 / maxListLimit
)
