package model

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string, so ids sort like their creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ValidID reports whether s is a UUID in the canonical lowercase form NewID
// produces. Braced, urn and undashed variants are rejected.
func ValidID(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id.String() == s
}
