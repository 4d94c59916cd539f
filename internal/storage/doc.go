// Package storage provides a BoltDB-based implementation of the event
// repository.
//
// It implements domain.EventRepository using BoltHold for persistence and
// seeds an empty store with the initial schedule at startup. All operations
// support context cancellation and proper error wrapping.
package storage
