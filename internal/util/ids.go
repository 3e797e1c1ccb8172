package util

import "github.com/google/uuid"

// NewID returns a random opaque identifier for tasks, intervals, sessions
// and presets.
func NewID() string {
	return uuid.NewString()
}
