// Package service contains the application use cases. It sits between the
// HTTP handlers in internal/api and the storage interfaces in internal/store,
// and never depends on a concrete storage implementation.
//
// Services return sentinel errors such as ErrTaskNotFound for expected
// conditions and wrap anything unexpected in a service error type, so the API
// layer can map results to status codes with errors.Is and errors.As.
package service
