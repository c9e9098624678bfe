package player

import "github.com/KirkDiggler/mafiabot/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// RegisterPlayerInput contains parameters for registering a player
type RegisterPlayerInput struct {
	PlayerID string
	Name     string
}

// RegisterPlayerOutput contains the result of registering a player
type RegisterPlayerOutput struct {
	Player *models.Player

	// Created is false when the player already had a profile
	Created bool
}

// AwardPointsInput contains parameters for scoring a finished game
type AwardPointsInput struct {
	PlayerID string
	Name     string
	Delta    int
	Won      bool
}

// GetLeaderboardInput contains parameters for retrieving the leaderboard
type GetLeaderboardInput struct {
	// Limit defaults to 10 when zero
	Limit int
}
