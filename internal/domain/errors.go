package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Config errors
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrConfigLoadFailed  = errors.New("failed to load configuration")
	ErrInvalidPort       = errors.New("invalid port")
	ErrInvalidRenderMode = errors.New("invalid render mode")
	ErrInvalidRateLimit  = errors.New("invalid rate limit")
	ErrInvalidProxyRange = errors.New("invalid trusted proxy range")

	// Server errors
	ErrListenFailed = errors.New("failed to start listener")
)
