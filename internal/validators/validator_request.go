// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-shipment-tracker/models"
)

// RequestValidator validates the bodies and query strings accepted by the
// HTTP API. Rules are checked field by field in declaration order and the
// first failure is returned as a *ValidationError.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.CreateShipmentRequest:
		return v.validateCreateShipmentRequest(value, fields...)
	case *models.CreateShipmentRequest:
		return v.validateCreateShipmentRequest(*value, fields...)

	case models.UpdateShipmentStatusRequest:
		return v.validateUpdateShipmentStatusRequest(value, fields...)
	case *models.UpdateShipmentStatusRequest:
		return v.validateUpdateShipmentStatusRequest(*value, fields...)

	case models.ListQuery:
		return v.validateListQuery(value, fields...)
	case *models.ListQuery:
		return v.validateListQuery(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldRole, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = requiredString(FieldName, r.Name)
		case FieldEmail:
			err = validEmail(r.Email)
		case FieldRole:
			if r.Role != models.RoleAdmin && r.Role != models.RoleUser {
				err = NewValidationError(FieldRole, "The selected role is invalid.")
			}
		case FieldPassword:
			err = strongPassword(r.Password, r.PasswordConfirmation)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validEmail(r.Email); err != nil {
				return err
			}
		case FieldPassword:
			if r.Password == "" {
				return NewValidationError(FieldPassword, "The password field is required.")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateShipmentRequest(r models.CreateShipmentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSenderName, FieldReceiverName, FieldOriginAddress, FieldDestinationAddress}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldSenderName:
			err = requiredString(FieldSenderName, r.SenderName)
		case FieldReceiverName:
			err = requiredString(FieldReceiverName, r.ReceiverName)
		case FieldOriginAddress:
			err = requiredString(FieldOriginAddress, r.OriginAddress)
		case FieldDestinationAddress:
			err = requiredString(FieldDestinationAddress, r.DestinationAddress)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateShipmentStatusRequest(r models.UpdateShipmentStatusRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if r.Status == "" {
				return NewValidationError(FieldStatus, "The status field is required.")
			}
			if !r.Status.IsValid() {
				return NewValidationError(FieldStatus, "The selected status is invalid.")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateListQuery(q models.ListQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus, FieldPage, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if q.Status != "" && !q.Status.IsValid() {
				return NewValidationError(FieldStatus, "The selected status is invalid.")
			}
		case FieldPage:
			if q.Page < 1 {
				return NewValidationError(FieldPage, "The page field must be at least 1.")
			}
			if q.Page > maxListPage {
				return NewValidationError(FieldPage, fmt.Sprintf("The page field must not be greater than %d.", uint64(maxListPage)))
			}
		case FieldLimit:
			if q.Limit < 1 {
				return NewValidationError(FieldLimit, "The limit field must be at least 1.")
			}
			if q.Limit > maxListLimit {
				return NewValidationError(FieldLimit, fmt.Sprintf("The limit field must not be greater than %d.", maxListLimit))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ParseListQuery reads the status, page and limit query parameters. Absent
// parameters default to page 1 and defaultLimit; present ones must be
// positive integers. The result is validated before it is returned.
func ParseListQuery(values url.Values, defaultLimit uint64) (models.ListQuery, error) {
	q := models.ListQuery{
		Status: models.ShipmentStatus(strings.TrimSpace(values.Get(FieldStatus))),
		Page:   1,
		Limit:  defaultLimit,
	}

	var err error
	if raw := values.Get(FieldPage); raw != "" {
		if q.Page, err = parsePositive(FieldPage, raw); err != nil {
			return models.ListQuery{}, err
		}
	}
	if raw := values.Get(FieldLimit); raw != "" {
		if q.Limit, err = parsePositive(FieldLimit, raw); err != nil {
			return models.ListQuery{}, err
		}
	}

	if err = (&RequestValidator{}).validateListQuery(q); err != nil {
		return models.ListQuery{}, err
	}

	return q, nil
}

// ParseShipmentID reads a shipment id path parameter.
func ParseShipmentID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, NewValidationError(FieldShipmentID, "The shipment id must be a positive integer.")
	}
	return id, nil
}

func parsePositive(field, raw string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, NewValidationError(field, fmt.Sprintf("The %s field must be an integer.", field))
	}
	return n, nil
}

func requiredString(field, value string) error {
	label := humanize(field)
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, fmt.Sprintf("The %s field is required.", label))
	}
	if utf8.RuneCountInString(value) > maxStringLength {
		return NewValidationError(field, fmt.Sprintf("The %s field must not be greater than %d characters.", label, maxStringLength))
	}
	return nil
}

func validEmail(email string) error {
	if err := requiredString(FieldEmail, email); err != nil {
		return err
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@"):], ".") {
		return NewValidationError(FieldEmail, "The email field must be a valid email address.")
	}

	return nil
}

func strongPassword(password, confirmation string) error {
	if password == "" {
		return NewValidationError(FieldPassword, "The password field is required.")
	}
	if password != confirmation {
		return NewValidationError(FieldPassword, "The password field confirmation does not match.")
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return NewValidationError(FieldPassword, fmt.Sprintf("The password field must be at least %d characters.", minPasswordLength))
	}
	if len(password) > maxPasswordLength {
		return NewValidationError(FieldPassword, fmt.Sprintf("The password field must not be greater than %d bytes.", maxPasswordLength))
	}

	var upper, lower, letter, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper, letter = true, true
		case unicode.IsLower(r):
			lower, letter = true, true
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	if !upper || !lower {
		return NewValidationError(FieldPassword, "The password field must contain at least one uppercase and one lowercase letter.")
	}
	if !letter {
		return NewValidationError(FieldPassword, "The password field must contain at least one letter.")
	}
	if !digit {
		return NewValidationError(FieldPassword, "The password field must contain at least one number.")
	}

	return nil
}

// humanize turns a camelCase field name into lower-case words:
// "senderName" becomes "sender name".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte(' ')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
