// Package util provides small shared utilities for Costwise.
package util

import (
	"github.com/google/uuid"
)

// NewID generates a time-ordered UUIDv7 identifier. Time-ordered IDs keep
// database index locality for insert-heavy tables.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Entropy exhaustion is the only failure mode; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
