package storage

import "github.com/google/uuid"

// NewFastID returns a time-ordered random record id.
func NewFastID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
