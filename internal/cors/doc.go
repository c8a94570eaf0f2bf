// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cors implements the cross-origin resource sharing policy applied
// to every response of the movies API.
//
// A [Policy] is built once at startup from [Options] and is read-only
// afterwards, so a single value is shared by every request goroutine.
// [Policy.Evaluate] is a pure function of (policy, request metadata) that
// returns the headers to emit; [Policy.Handler] applies it as middleware.
//
// The policy never blocks a request. A disallowed origin, method or header
// simply results in missing Access-Control-* headers, and the browser
// enforces the rejection.
package cors
