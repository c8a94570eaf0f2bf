// Package http implements the HTTP transport layer of the movies API.
//
// It exposes the route-groups (movies, system), the router assembly and the
// middleware chain. Cross-cutting concerns such as request tracing, access
// logging, metrics, CORS headers and response compression are handled in
// this package before requests are delegated to the service layer.
//
// Every mounted path answers OPTIONS preflight requests with 204 No Content.
// Unknown paths, and known paths requested with an unregistered method, get a
// JSON 404. CORS headers are attached in all cases.
package http
