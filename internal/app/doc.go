// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the movies-api server from its configuration.
//
// New builds every component in dependency order (CORS policy, metrics,
// services, route table and handler, listener) and fails fast when any of
// them rejects its configuration, so a misconfigured process never accepts a
// request.
package app
