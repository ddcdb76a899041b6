package service

import "errors"

// Sentinel errors returned by services. Callers check them with errors.Is;
// the API layer maps them to HTTP status codes.
var (
	// ErrTaskNotFound indicates that no task exists with the requested ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrTaskNotFound = errors.New("task not found")
)
