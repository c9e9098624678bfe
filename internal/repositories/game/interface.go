package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/mafiabot/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/mafiabot/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// CreateGame allocates a new game for a chat scope and makes it the scope's active game
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// LoadActiveGame retrieves the game currently active in a chat scope
	LoadActiveGame(ctx context.Context, input *LoadActiveGameInput) (*models.Game, error)

	// GetActiveGames retrieves all games that have not ended
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)

	// EndGame marks a game as over and releases its chat scope
	EndGame(ctx context.Context, input *EndGameInput) error

	// AddParticipant appends a dealt participant to a game
	AddParticipant(ctx context.Context, input *AddParticipantInput) error

	// SetParticipantAlive updates a participant's alive flag
	SetParticipantAlive(ctx context.Context, input *SetParticipantAliveInput) error

	// SetParticipantRole replaces a participant's role
	SetParticipantRole(ctx context.Context, input *SetParticipantRoleInput) error
}
