package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 returns a time-ordered UUID. Primary keys sort by
// creation time, which keeps the recent-registration queries cheap.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
