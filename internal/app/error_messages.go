// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// exercise tracker handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgUserNotFound is returned when the referenced user id does not
	// match any stored user, including ids that are malformed.
	MsgUserNotFound = "user not found"

	// MsgStoreUnavailable is returned when the document store cannot be
	// reached or the request ran out of time.
	MsgStoreUnavailable = "store unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgNotFound answers unknown paths and unsupported methods.
	MsgNotFound = "Not Found"

	// MsgDatabaseError is the only error text written in legacy error mode.
	MsgDatabaseError = "Database error"

	// MsgDatabaseCleared is the plain-text body of a successful reset.
	MsgDatabaseCleared = "Database cleared!"

	// MsgStatusOK and MsgStatusUnavailable are the health endpoint states.
	MsgStatusOK          = "ok"
	MsgStatusUnavailable = "unavailable"
)
