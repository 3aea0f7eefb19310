// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for third-party services the tracker
// depends on.
//
// The primary abstraction is [Geocoder], which turns a free-text address into
// coordinates. The package ships an OpenCage implementation over HTTP/REST
// ([NewOpenCageGeocoder]) and a caching decorator ([NewCachedGeocoder]) backed
// by a [store.GeocodeCache].
//
// A lookup never fails with an error: every failure degrades to an unresolved
// [models.Geolocation] whose Outcome tells a rejected lookup
// ([models.GeocodeFailed]) apart from an unreachable provider
// ([models.GeocodeTransportFailure]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shipment-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Geocoder resolves addresses into coordinates on a best-effort basis.
type Geocoder interface {
	// Resolve looks up address. The returned Geolocation carries coordinates
	// only when its Outcome is [models.GeocodeResolved].
	Resolve(ctx context.Context, address string) models.Geolocation
}
