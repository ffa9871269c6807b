package domain

import "errors"

// ErrUnknownTemplate is returned when no built-in template exists for a business type.
var ErrUnknownTemplate = errors.New("unknown template")

// ErrEmptyInput is returned when a decoder receives no bytes at all.
var ErrEmptyInput = errors.New("empty input")
