package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/mafiabot/internal/common/uuid UUID

// UUID hands out identifiers for persisted games and grants
type UUID interface {
	NewUUID() string
}

// DefaultUUID issues version 7 UUIDs, which sort by creation time
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new time-ordered UUID, falling back to a random one if
// the clock-based generator fails
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
