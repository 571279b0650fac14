package idgen

import "github.com/google/uuid"

// UUID generates random (version 4) UUIDs.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.New().String()
}
