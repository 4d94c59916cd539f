// Package app provides application initialization and lifecycle management.
//
// The App type wires all dependencies together and manages:
// - Configuration resolution (the APP_ENV gate runs exactly once, here)
// - Logging setup based on the resolved mode
// - Database initialization and seeding
// - HTTP server lifecycle with CORS and recovery middleware
// - Graceful shutdown
package app
