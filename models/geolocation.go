package models

// GeocodeOutcome classifies the result of a single address lookup.
type GeocodeOutcome string

const (
	// GeocodeResolved means the provider returned numeric coordinates.
	GeocodeResolved GeocodeOutcome = "resolved"
	// GeocodeFailed means the provider answered but the answer carried an
	// error status or no usable geometry.
	GeocodeFailed GeocodeOutcome = "failed"
	// GeocodeTransportFailure means the provider could not be reached or
	// its response could not be read.
	GeocodeTransportFailure GeocodeOutcome = "transport_failure"
)

// Geolocation is the result of resolving a free-text address.
// Latitude and Longitude are meaningful only when Outcome is GeocodeResolved.
type Geolocation struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Outcome   GeocodeOutcome `json:"outcome"`
}

// Resolved reports whether the lookup produced coordinates.
func (g Geolocation) Resolved() bool {
	return g.Outcome == GeocodeResolved
}

// Unresolved builds a Geolocation without coordinates.
func Unresolved(outcome GeocodeOutcome) Geolocation {
	return Geolocation{Outcome: outcome}
}
