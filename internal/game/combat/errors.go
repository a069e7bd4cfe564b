package combat

import "errors"

var (
	// ErrInvalidStyleIndex is returned when a combat style selection falls
	// outside the wielded weapon's option list.
	ErrInvalidStyleIndex = errors.New("combat: combat style index out of range")

	// ErrUnimplementedStyle is returned when a formula dispatch reaches a
	// style type with no defined pipeline.
	ErrUnimplementedStyle = errors.New("combat: no formula for style type")
)
