// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding request bodies. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidRequestBody is returned when a form or JSON body cannot be
	// decoded into field values.
	ErrInvalidRequestBody = errors.New("invalid request body")
)
