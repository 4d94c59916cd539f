// Package handler implements the HTTP layer.
//
// This package provides the JSON endpoints for calendar events:
// - GET /: API availability check
// - GET /event: list all events
// - POST /event: create an event
// - GET /event/{id}, PATCH /event/{id}, DELETE /event/{id}: single event
// - GET /health: health check endpoint
//
// It also carries the CORS and panic-recovery middleware. Both consume the
// configuration resolved at startup: development admits any origin and
// renders verbose errors, production enforces the origin whitelist and
// returns generic failures.
package handler
