// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the exercise tracker HTTP API.
//
// The primary abstraction is [TrackerAdapter], which hides the wire format
// (form bodies, query strings, JSON responses) from callers. The package
// ships an HTTP/REST implementation built on resty ([NewHTTPTrackerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// server's error mode (e.g. [ErrNotFound] for 404, [ErrLegacyFailure] for a
// 200 response carrying an error body).
package adapter

import (
	"context"

	"github.com/MKhiriev/exercise-tracker/models"
)

// TrackerAdapter defines communication with an exercise tracker server.
type TrackerAdapter interface {
	// CreateUser creates the user or returns the existing one with the same
	// username.
	CreateUser(ctx context.Context, username string) (models.UserSummary, error)

	// ListUsers returns every user in creation order.
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	// AddExercise appends an exercise to the log of req.UserID. An empty
	// req.Date lets the server pick the current day.
	AddExercise(ctx context.Context, req models.AddExerciseRequest) (models.ExerciseRecord, error)

	// GetLog fetches the filtered log of req.UserID. Empty From, To and
	// Limit are not sent.
	GetLog(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error)

	// Health reports the server status and version. A server whose store is
	// unreachable answers with [ErrServiceUnavailable] and the decoded body.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Reset deletes every user. Servers without the reset route answer with
	// [ErrNotFound].
	Reset(ctx context.Context) error
}
