package common

import (
	"time"

	"github.com/google/uuid"
)

// GenerateUUID returns a random UUID string.
func GenerateUUID() string {
	return uuid.New().String()
}

// NowISO returns the current time in ISO-8601 format, the timestamp shape
// used throughout the history and account records.
func NowISO() string {
	return time.Now().Format(time.RFC3339)
}
