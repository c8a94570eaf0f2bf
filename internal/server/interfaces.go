package server

import "net"

// Server defines the lifecycle contract of the movies-api listener.
//
// RunServer may be called once. Shutdown is safe to call from any goroutine,
// any number of times, before or after RunServer.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown stops the server and waits for RunServer to return.
	Shutdown()

	// Addr returns the bound address; useful when port 0 was requested.
	Addr() net.Addr

	// State reports the current lifecycle state.
	State() State
}
