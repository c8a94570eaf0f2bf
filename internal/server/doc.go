// Package server runs the movies-api HTTP listener.
//
// The listening socket is bound when the server is created, so an occupied
// port is reported before any request is accepted. RunServer blocks until a
// termination signal or Shutdown, then drains in-flight requests within the
// configured shutdown timeout.
package server
