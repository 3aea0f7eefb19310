package models

// RegisterRequest is the body of POST /v1/auth/user/register.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Role                 Role   `json:"role"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest is the body of POST /v1/auth/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateShipmentRequest is the body of POST /v1/shipment/create.
type CreateShipmentRequest struct {
	SenderName         string `json:"senderName"`
	ReceiverName       string `json:"receiverName"`
	OriginAddress      string `json:"originAddress"`
	DestinationAddress string `json:"destinationAddress"`
}

// UpdateShipmentStatusRequest is the body of
// PATCH /v1/admin/shipment/{shipmentId}/update.
type UpdateShipmentStatusRequest struct {
	Status ShipmentStatus `json:"status"`
}

// ListQuery holds the query parameters accepted by listing endpoints.
type ListQuery struct {
	Status ShipmentStatus
	Page   uint64
	Limit  uint64
}
