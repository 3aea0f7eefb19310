package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 when the clock
// sequence cannot be read.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TrackingNumberGenerator produces random, non-sequential tracking numbers
// that reveal nothing about the shipment or its creation order.
type TrackingNumberGenerator struct {
}

func NewTrackingNumberGenerator() *TrackingNumberGenerator {
	return &TrackingNumberGenerator{}
}

// Generate returns a random UUIDv4 string.
func (g *TrackingNumberGenerator) Generate() string {
	return uuid.NewString()
}
