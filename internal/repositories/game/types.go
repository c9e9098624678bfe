package game

import "github.com/KirkDiggler/mafiabot/internal/models"

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	ScopeKey string
	Variant  models.Variant
}

// CreateGameOutput contains the created game
type CreateGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// LoadActiveGameInput contains parameters for retrieving a scope's active game
type LoadActiveGameInput struct {
	ScopeKey string
}

// GetActiveGamesInput contains parameters for retrieving active games
type GetActiveGamesInput struct{}

// GetActiveGamesOutput contains the result of retrieving active games
type GetActiveGamesOutput struct {
	Games []*models.Game
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
	GameID string

	// WinningSide is empty when the game was cancelled
	WinningSide models.Faction
}

// AddParticipantInput contains parameters for adding a participant
type AddParticipantInput struct {
	GameID      string
	Participant *models.ParticipantRecord
}

// SetParticipantAliveInput contains parameters for updating a participant's alive flag
type SetParticipantAliveInput struct {
	GameID        string
	ParticipantID string
	Alive         bool
}

// SetParticipantRoleInput contains parameters for updating a participant's role
type SetParticipantRoleInput struct {
	GameID        string
	ParticipantID string
	Role          models.Role
}
