package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicateKey  = errors.New("duplicate key")
)
