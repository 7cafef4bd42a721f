// Package config handles configuration loading, parsing, and validation
// from a .env file, environment variables and an optional config.yaml. It
// provides type-safe access to server, auth and database settings.
package config
