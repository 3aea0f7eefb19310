// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ShipmentStatus is the delivery state of a shipment.
type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "pending"
	StatusInTransit ShipmentStatus = "in-transit"
	StatusDelivered ShipmentStatus = "delivered"
)

// ShipmentStatuses returns every status value accepted by the API, in
// lifecycle order.
func ShipmentStatuses() []ShipmentStatus {
	return []ShipmentStatus{StatusPending, StatusInTransit, StatusDelivered}
}

// IsValid reports whether s is one of the known shipment statuses.
func (s ShipmentStatus) IsValid() bool {
	for _, status := range ShipmentStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

func (s ShipmentStatus) String() string {
	return string(s)
}

// Shipment is a parcel registered by a user and tracked by its
// TrackingNumber.
//
// TrackingNumber is assigned once at creation and never updated afterwards.
// Coordinates are optional: a nil pointer means the address could not be
// geocoded when the shipment was created.
type Shipment struct {
	ID             int64  `json:"id"`
	TrackingNumber string `json:"trackingNumber"`

	SenderName         string `json:"senderName"`
	ReceiverName       string `json:"receiverName"`
	OriginAddress      string `json:"originAddress"`
	DestinationAddress string `json:"destinationAddress"`

	OriginLatitude       *float64 `json:"originLatitude"`
	OriginLongitude      *float64 `json:"originLongitude"`
	DestinationLatitude  *float64 `json:"destinationLatitude"`
	DestinationLongitude *float64 `json:"destinationLongitude"`

	Status ShipmentStatus `json:"status"`

	// CreatedByID references the owning user.
	CreatedByID int64 `json:"-"`
	// CreatedBy is populated only when the owner was loaded together with
	// the shipment.
	CreatedBy *User `json:"createdBy,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// SetOrigin stores the origin coordinates when geo was resolved.
func (s *Shipment) SetOrigin(geo Geolocation) {
	if !geo.Resolved() {
		return
	}
	lat, lng := geo.Latitude, geo.Longitude
	s.OriginLatitude, s.OriginLongitude = &lat, &lng
}

// SetDestination stores the destination coordinates when geo was resolved.
func (s *Shipment) SetDestination(geo Geolocation) {
	if !geo.Resolved() {
		return
	}
	lat, lng := geo.Latitude, geo.Longitude
	s.DestinationLatitude, s.DestinationLongitude = &lat, &lng
}

// ShipmentScope selects whose shipments a listing returns.
type ShipmentScope struct {
	// All lists every user's shipment with its owner attached.
	All bool
	// OwnerID restricts the listing to one user's shipments when All is
	// false.
	OwnerID int64
}

// ScopeAll lists every shipment, for admins.
func ScopeAll() ShipmentScope {
	return ShipmentScope{All: true}
}

// ScopeOwnedBy lists the shipments created by userID.
func ScopeOwnedBy(userID int64) ShipmentScope {
	return ShipmentScope{OwnerID: userID}
}

// Actor is the authenticated user performing a request, together with the
// address the request came from.
type Actor struct {
	User      User
	IPAddress string
}
