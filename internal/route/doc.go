// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package route holds the route table of the HTTP API.
//
// Feature areas describe their endpoints as a [Group]: a name plus an ordered
// list of (method, sub-path, handler) entries. At startup each group is
// mounted under a URL prefix with [Table.Mount]; the table joins prefix and
// sub-path, rejects duplicate (method, path) pairs and is sealed before the
// server starts accepting connections. The transport layer then walks
// [Table.Routes] to register handlers on the router.
package route
