package models

import "errors"

// Sentinel errors reported by core model operations. Lookups that find
// nothing are not errors; they return nil results.
var (
	// ErrInvalidInput indicates a non-positive dimension, negative area,
	// or non-positive construction system factor.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateName indicates an attempt to add a room whose name
	// collides with an existing room in the same house.
	ErrDuplicateName = errors.New("duplicate name")
)
