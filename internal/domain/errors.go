package domain

import "errors"

// Error categories for the delivery boundary. Repositories and use cases wrap
// one of these so handlers can map a failure to a status without inspecting
// message text.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
