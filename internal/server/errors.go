// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrListen is returned by NewServer when the address cannot be bound.
	ErrListen = errors.New("error binding listener")
	// ErrServe is returned by RunServer when the listener fails while serving.
	ErrServe = errors.New("error serving http")
	// ErrShutdown is returned by RunServer when in-flight requests did not
	// finish within the shutdown timeout and connections were closed.
	ErrShutdown = errors.New("error shutting down server")

	errServerAlreadyStarted = errors.New("server already started or stopped")
)
