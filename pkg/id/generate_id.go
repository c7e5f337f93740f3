package id

import "github.com/google/uuid"

// NewUUID returns a random RFC 4122 UUID in its 36-char string form.
func NewUUID() string {
	return uuid.NewString()
}
