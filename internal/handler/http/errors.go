// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedContentType is returned when a request carrying a body
	// does not declare "application/json" as its content type.
	ErrUnsupportedContentType = errors.New("unsupported `Content-Type` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRouteNotFound is returned for paths and methods no route serves.
	ErrRouteNotFound = errors.New("route not found")

	// ErrPanicRecovered is reported when a handler panicked.
	ErrPanicRecovered = errors.New("panic recovered")
)
