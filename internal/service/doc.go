// Package service contains the business logic for calendar events.
//
// EventService validates input, assigns identifiers, and orchestrates the
// event repository for create, read, update, and delete operations. All
// methods accept context for cancellation support.
package service
