package domain

import "errors"

// Domain errors represent error conditions in the dieroll domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidDice is returned when a dice spec cannot be rolled.
	ErrInvalidDice = errors.New("dieroll: invalid dice")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("dieroll: invalid configuration")
)
