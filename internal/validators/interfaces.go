// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming API requests before they reach the
// service layer.
//
// A failed check is reported as a [*ValidationError] that wraps
// [ErrValidation] and carries the first failing field together with a
// client-facing message. The HTTP layer answers it with 422.
package validators

import "context"

// Validator checks a request value.
//
// When fields are passed only those fields are checked, which lets a service
// validate e.g. just the status of an update request.
type Validator interface {
	Validate(ctx context.Context, request any, fields ...string) error
}
