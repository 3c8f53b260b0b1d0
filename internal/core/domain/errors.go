package domain

import "errors"

var (
	// ErrUnauthorized covers every init-data failure mode. Callers must not
	// expose which check failed; the cause is logged server-side only.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when an authenticated non-admin attempts an
	// admin-only operation.
	ErrForbidden = errors.New("access forbidden")

	ErrClientNotFound  = errors.New("client not found")
	ErrClientExists    = errors.New("client already exists")
	ErrInvalidSettings = errors.New("invalid field visibility settings")
	ErrBackendFailure  = errors.New("data backend unavailable")
)
