package analysis

import "errors"

// ErrInvalidInput marks inputs a calculator cannot produce a value for.
var ErrInvalidInput = errors.New("invalid input")
