package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmailSubscribed indicates a subscriber with the same email already exists.
	ErrEmailSubscribed = errors.New("email already subscribed")
)
