// Package config handles application configuration loading.
//
// Configuration is loaded from environment variables with sensible defaults.
// The runtime mode is gated on APP_ENV: the exact value "production" selects
// production mode, anything else degrades safely to development. The resolved
// configuration is built once at startup and treated as immutable read-only
// state for the rest of the process.
package config
