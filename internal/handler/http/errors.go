// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while decoding request bodies. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not a valid JSON
	// document of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when the request body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")
)
