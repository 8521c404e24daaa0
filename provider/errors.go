package provider

import "errors"

// Failure taxonomy shared by the resolver, the aggregator and the admin
// controllers. Controllers map these onto HTTP statuses.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrAccessDenied = errors.New("storage access denied")
	ErrConflict     = errors.New("object already exists")
)
