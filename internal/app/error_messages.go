// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the shipment
// tracker API.
//
// Every Msg* constant is written into the "message" field of a response
// envelope. Keeping them in one place keeps the wording identical across
// handlers and middleware.
package app

// Success messages.
const (
	MsgUserCreated        = "User created successfully"
	MsgUserLoggedIn       = "User login successful"
	MsgUserLoggedOut      = "User successfully logged out"
	MsgShipmentCreated    = "Shipment created successfully"
	MsgShipmentUpdated    = "Shipment status updated"
	MsgShipmentRecordFor  = "Shipment record for "
	MsgUserShipments      = "User Shipment records"
	MsgShipments          = "Shipment records"
	MsgSystemLogs         = "System Logs records"
	MsgApplicationVersion = "Application version"
)

// Business failures.
const (
	MsgEmailAlreadyExists     = "This email already exists"
	MsgUserNotCreated         = "User not created"
	MsgUserNotFound           = "User record not found"
	MsgIncorrectPassword      = "Incorrect Password"
	MsgCoordinatesUnavailable = "Cannot get Origin Address coordinates at this time. Please try again later."
	MsgShipmentNotCreated     = "Shipment record not created"
	MsgShipmentNotFound       = "Shipment record not found"
	MsgShipmentNotUpdated     = "Shipment status not updated"
	MsgNoShipments            = "No Shipment record available at the moment"
	MsgNoSystemLogs           = "No System logs available at the moment"
)

// Transport failures.
const (
	MsgUnauthenticated    = "Unauthenticated."
	MsgMissingAbility     = "You are not permitted to carry out this action"
	MsgRouteNotFound      = "This URL seems to be on a coffee break."
	MsgTooManyAttempts    = "Too many attempts made. Kindly try again later"
	MsgInvalidContentType = "Include Content-Type and set the value to: application/json in your header."
	MsgInvalidJSON        = "Invalid JSON was passed"
	MsgInvalidGzip        = "Invalid gzip data"
	MsgUnexpectedError    = "Something went wrong"
)

// Messages returned in production when an endpoint fails unexpectedly.
const (
	MsgRegisterFailed       = "An unexpected error occurred while creating user record. Please try again later."
	MsgLoginFailed          = "An unexpected error occurred while logging in. Please try again later."
	MsgLogoutFailed         = "An unexpected error occurred while logging out. Please try again later."
	MsgCreateShipmentFailed = "An unexpected error occurred while creating shipment record. Please try again later."
	MsgGetShipmentsFailed   = "An unexpected error occurred while retrieving shipment records. Please try again later."
	MsgUpdateStatusFailed   = "An unexpected error occurred while updating the shipment status. Please try again later."
	MsgGetSystemLogsFailed  = "An unexpected error occurred while retrieving system logs. Please try again later."
)
