// Package config provides configuration loading, merging, and validation
// facilities for the movies-api server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults (port 5000 on all interfaces, permissive CORS)
//  2. Environment variables, optionally seeded from a dotenv file
//  3. Command-line flags
//  4. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
