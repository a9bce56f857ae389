package domain

import "errors"

// Sentinel errors for the fridge domain. Use errors.Is() to check these.
var (
	// ErrInvalidFillFactor indicates a fill factor outside the closed range [0.0, 1.0].
	// It is the only validation failure the fridge core produces.
	ErrInvalidFillFactor = errors.New("invalid fill factor")
)
