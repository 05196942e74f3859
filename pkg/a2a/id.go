package a2a

import "github.com/google/uuid"

// NewTaskID generates a unique task identifier.
func NewTaskID() string {
	return uuid.NewString()
}

// NewSessionID generates a unique session correlation key.
func NewSessionID() string {
	return uuid.NewString()
}
