// Package domain defines the core entities and interfaces for the calendar
// backend.
//
// It contains the Event model, the EventRepository contract for data access,
// and the sentinel errors shared across layers. All interfaces accept context
// for cancellation and timeout support.
package domain
