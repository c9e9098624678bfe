package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/mafiabot/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// NewGame opens a fresh lobby in a chat scope, replacing any game already there
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// JoinGame seats a human in the lobby
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// AddBot seats a scripted participant in the lobby
	AddBot(ctx context.Context, input *AddBotInput) (*AddBotOutput, error)

	// StartGame deals roles and begins the first night
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SubmitAction records a night target
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*EventOutput, error)

	// CastVote records a yes/no on whether to lynch today
	CastVote(ctx context.Context, input *CastVoteInput) (*EventOutput, error)

	// Nominate records a lynch nomination
	Nominate(ctx context.Context, input *NominateInput) (*EventOutput, error)

	// Confirm records a yes/no on executing the nominee
	Confirm(ctx context.Context, input *ConfirmInput) (*EventOutput, error)

	// CancelGame stops the game in a chat scope
	CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error)

	// GetStatus returns the public state of the game in a chat scope
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)

	// RegisterPlayer creates or refreshes a player profile
	RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error)

	// GetProfile returns a player's profile and grants
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)

	// GetLeaderboard returns the points leaderboard
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GrantEntitlement gives a player a guaranteed active role for a number of games
	GrantEntitlement(ctx context.Context, input *GrantEntitlementInput) (*GrantEntitlementOutput, error)

	// CanSpeak reports whether a human may post in the game's chat right now
	CanSpeak(ctx context.Context, input *CanSpeakInput) (*CanSpeakOutput, error)
}
