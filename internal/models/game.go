package models

import (
	"time"
)

// Variant holds the optional rule switches chosen when a game is created
type Variant struct {
	// Potato arms every civil with a one-shot probabilistic kill
	Potato bool
}

// ParticipantRecord is the persisted view of a participant
type ParticipantRecord struct {
	// ID is the participant's session-scoped ID
	ID string

	// HumanID is the chat user ID, empty for bots
	HumanID string

	// Name is the display name
	Name string

	// Role is the assigned role
	Role Role

	// IsBot marks a scripted stand-in
	IsBot bool

	// Alive mirrors the in-memory participant
	Alive bool
}

// Game is the persisted record of one game in a chat scope
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// ScopeKey is the chat/channel the game is played in
	ScopeKey string

	// Variant holds the optional rules for this game
	Variant Variant

	// Participants holds everyone dealt a role, in seat order
	Participants []*ParticipantRecord

	// WinningSide is set when the game ends with a winner
	WinningSide Faction

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time

	// EndedAt is set once the game is over
	EndedAt *time.Time
}

// IsActive returns true until the game has ended
func (g *Game) IsActive() bool {
	return g.EndedAt == nil
}
