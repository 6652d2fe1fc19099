package kat

import "errors"

// Errors returned while loading or checking vectors.
var (
	ErrUnknownAlgorithm = errors.New("kat: unknown algorithm")
	ErrInvalidVector    = errors.New("kat: invalid vector")
	ErrMismatch         = errors.New("kat: digest mismatch")
)
