package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownState indicates a state name outside the recognised set.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownCategory indicates a category label outside the recognised set.
	ErrUnknownCategory = errors.New("unknown category")

	// Action Errors.

	// ErrInvalidURL indicates a service URL is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("invalid service URL")

	// ErrOpenerUnavailable indicates no browser opener is configured.
	ErrOpenerUnavailable = errors.New("URL opener unavailable")

	// ErrRateLimited indicates open requests arrived faster than allowed.
	ErrRateLimited = errors.New("rate limited")
)
