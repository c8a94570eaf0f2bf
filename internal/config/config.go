// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// Defaults applied before any other configuration source. They reproduce the
// reference deployment: listen on every interface on port 5000 and allow any
// origin to call the movies API with the usual REST verbs.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 5000
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultLogLevel          = "debug"
)

var (
	// DefaultCORSOrigins allows every origin.
	DefaultCORSOrigins = []string{"*"}
	// DefaultCORSMethods lists the verbs served by the movies route-group.
	DefaultCORSMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	// DefaultCORSAllowHeaders lists the request headers browsers may send.
	DefaultCORSAllowHeaders = []string{"Content-Type", "Authorization"}
)

// StructuredConfig is the top-level configuration container for the
// movies-api server. It is populated by merging defaults, environment
// variables (optionally seeded from a dotenv file), command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as version and log level.
	App App `envPrefix:"APP_"`

	// Server holds the listening endpoint and lifecycle timeouts.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds the cross-origin policy applied to every response.
	CORS CORS `envPrefix:"CORS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and lifecycle settings for the HTTP listener.
type Server struct {
	// Host is the interface to bind; empty or "0.0.0.0" means all interfaces.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// Port is the TCP port to bind. A non-numeric value is a startup error.
	// Env: SERVER_PORT
	Port int `env:"PORT"`

	// ShutdownTimeout bounds the graceful drain of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
}

// Address returns the listening address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CORS holds the cross-origin resource sharing policy settings.
// List values are comma-separated in the environment.
type CORS struct {
	// Origins lists allowed origins; "*" allows any origin.
	// Env: CORS_ORIGINS
	Origins []string `env:"ORIGINS" envSeparator:","`

	// Methods lists the HTTP methods announced on preflight responses.
	// Env: CORS_METHODS
	Methods []string `env:"METHODS" envSeparator:","`

	// AllowHeaders lists the request headers announced on preflight responses.
	// Env: CORS_ALLOW_HEADERS
	AllowHeaders []string `env:"ALLOW_HEADERS" envSeparator:","`

	// ExposeHeaders lists the response headers readable by browser scripts.
	// Env: CORS_EXPOSE_HEADERS
	ExposeHeaders []string `env:"EXPOSE_HEADERS" envSeparator:","`

	// MaxAge is the preflight cache lifetime in seconds; 0 omits the header.
	// Env: CORS_MAX_AGE
	MaxAge int `env:"MAX_AGE"`

	// SupportsCredentials emits Access-Control-Allow-Credentials: true.
	// Env: CORS_SUPPORTS_CREDENTIALS
	SupportsCredentials bool `env:"SUPPORTS_CREDENTIALS"`

	// SendWildcard answers "*" instead of reflecting the caller's origin
	// when any origin is allowed.
	// Env: CORS_SEND_WILDCARD
	SendWildcard bool `env:"SEND_WILDCARD"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a dotenv file is loaded first, see [loadDotEnv])
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// defaults returns the configuration layer that every other source is merged
// on top of.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			Host:              DefaultHost,
			Port:              DefaultPort,
			ShutdownTimeout:   DefaultShutdownTimeout,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		CORS: CORS{
			Origins:      append([]string(nil), DefaultCORSOrigins...),
			Methods:      append([]string(nil), DefaultCORSMethods...),
			AllowHeaders: append([]string(nil), DefaultCORSAllowHeaders...),
		},
	}
}
