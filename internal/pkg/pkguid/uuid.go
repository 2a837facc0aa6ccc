package pkguid

import "github.com/google/uuid"

// UUID produces time-ordered UUIDv7 strings, used as request correlation ids.
type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a UUIDv7, or a random v4 if the clock-based source fails.
func (*UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
