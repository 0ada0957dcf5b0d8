package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/mentorcast/internal/common/uuid UUID

// UUID generates lock tokens and request ids
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using google/uuid v4 values
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a random v4 UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
