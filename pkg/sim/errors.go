package sim

import (
	"errors"
)

var (
	ErrNegativeApples = errors.New("apple count cannot be negative")
	ErrNegativeGain   = errors.New("growth values must be non-negative")
)
