// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errMountingRouteGroup is returned by NewHandlers when a route-group cannot
// be added to the route table (collision, bad prefix or bad route). This is
// treated as a fatal misconfiguration and causes the application to fail at
// startup.
var errMountingRouteGroup = errors.New("error mounting route group")
