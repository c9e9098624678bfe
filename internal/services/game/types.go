package game

import (
	"time"

	"github.com/KirkDiggler/mafiabot/internal/common/clock"
	"github.com/KirkDiggler/mafiabot/internal/dice"
	"github.com/KirkDiggler/mafiabot/internal/models"
	entitlementRepo "github.com/KirkDiggler/mafiabot/internal/repositories/entitlement"
	gameRepo "github.com/KirkDiggler/mafiabot/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/mafiabot/internal/repositories/player"
	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
)

// Default tunables. Roster limits and durations left at zero are filled in by
// New; the rest are taken as given, so start from DefaultConfig.
const (
	DefaultMinPlayers            = 5
	DefaultMaxPlayers            = 10
	DefaultMaxBots               = 6
	DefaultNightDuration         = 60 * time.Second
	DefaultDayDuration           = 60 * time.Second
	DefaultVoteDuration          = 30 * time.Second
	DefaultNominationDuration    = 10 * time.Second
	DefaultConfirmationDuration  = 10 * time.Second
	DefaultCountdownStep         = 5 * time.Second
	DefaultExtraMafiaThreshold   = 8
	DefaultRopeBreakBase         = 0.1
	DefaultRopeBreakPenalty      = 0.2
	DefaultRopeBreakMin          = 0.05
	DefaultExecutionerMultiplier = 2.0
	DefaultPotatoHitChance       = 0.5
	DefaultBotVoteYesChance      = 0.5
	DefaultBotConfirmYesChance   = 0.7
	DefaultPointsWin             = 50
	DefaultPointsLose            = 10
)

// Config holds configuration for the game service
type Config struct {
	// Roster limits
	MinPlayers int
	MaxPlayers int
	MaxBots    int

	// Phase durations
	NightDuration        time.Duration
	DayDuration          time.Duration
	VoteDuration         time.Duration
	NominationDuration   time.Duration
	ConfirmationDuration time.Duration

	// CountdownStep is how often the timer message is refreshed; negative disables it
	CountdownStep time.Duration

	// ExtraMafiaThreshold is the roster size from which a second mafioso is dealt
	ExtraMafiaThreshold int

	// Optional roles
	EnableDeputy      bool
	EnableConsigliere bool
	EnableMayor       bool
	EnablePetrushka   bool

	// EnablePotato allows new games to roll the potato variant with PotatoChance
	EnablePotato bool
	PotatoChance float64

	// PotatoHitChance is the chance a thrown potato kills
	PotatoHitChance float64

	// Rope-break tuning
	RopeBreakBase         float64
	RopeBreakPenalty      float64
	RopeBreakMin          float64
	ExecutionerMultiplier float64

	// Scripted participant behaviour
	BotVoteYesChance    float64
	BotConfirmYesChance float64

	// Scoring
	ScoringEnabled bool
	PointsWin      int
	PointsLose     int

	// EarlyFinish completes a collection phase as soon as everyone has answered
	EarlyFinish bool

	// Repository dependencies
	GameRepo        gameRepo.Repository
	PlayerRepo      playerRepo.Repository
	EntitlementRepo entitlementRepo.Repository

	// Service dependencies
	Notifier  messaging.Notifier
	Presenter messaging.Presenter
	Roller    dice.Roller
	Scheduler clock.Scheduler
}

// DefaultConfig returns a Config carrying the default tunables and no
// dependencies
func DefaultConfig() *Config {
	return &Config{
		MinPlayers:            DefaultMinPlayers,
		MaxPlayers:            DefaultMaxPlayers,
		MaxBots:               DefaultMaxBots,
		NightDuration:         DefaultNightDuration,
		DayDuration:           DefaultDayDuration,
		VoteDuration:          DefaultVoteDuration,
		NominationDuration:    DefaultNominationDuration,
		ConfirmationDuration:  DefaultConfirmationDuration,
		CountdownStep:         DefaultCountdownStep,
		ExtraMafiaThreshold:   DefaultExtraMafiaThreshold,
		PotatoHitChance:       DefaultPotatoHitChance,
		RopeBreakBase:         DefaultRopeBreakBase,
		RopeBreakPenalty:      DefaultRopeBreakPenalty,
		RopeBreakMin:          DefaultRopeBreakMin,
		ExecutionerMultiplier: DefaultExecutionerMultiplier,
		BotVoteYesChance:      DefaultBotVoteYesChance,
		BotConfirmYesChance:   DefaultBotConfirmYesChance,
		ScoringEnabled:        true,
		PointsWin:             DefaultPointsWin,
		PointsLose:            DefaultPointsLose,
		EarlyFinish:           true,
	}
}

// NewGameInput contains parameters for opening a new lobby
type NewGameInput struct {
	// ScopeKey is the chat channel the game is played in
	ScopeKey string
}

// NewGameOutput contains the result of opening a new lobby
type NewGameOutput struct {
	GameID  string
	Variant models.Variant
}

// JoinGameInput contains parameters for joining a lobby
type JoinGameInput struct {
	ScopeKey string

	// HumanID is the chat user ID of the player joining
	HumanID string

	// Name is the display name of the player joining
	Name string
}

// JoinGameOutput contains the result of joining a lobby
type JoinGameOutput struct {
	ParticipantID string
	Rejected      models.RejectReason
}

// AddBotInput contains parameters for adding a scripted participant
type AddBotInput struct {
	ScopeKey string
}

// AddBotOutput contains the result of adding a scripted participant
type AddBotOutput struct {
	ParticipantID string
	Name          string
	Rejected      models.RejectReason
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	ScopeKey string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Rejected models.RejectReason
}

// SubmitActionInput carries a night action
type SubmitActionInput struct {
	ScopeKey string
	HumanID  string

	// TargetID is the chosen participant; empty or "skip" means no action
	TargetID string
}

// CastVoteInput carries a lynch poll vote
type CastVoteInput struct {
	ScopeKey string
	HumanID  string
	Yes      bool
}

// NominateInput carries a nomination
type NominateInput struct {
	ScopeKey string
	HumanID  string

	// TargetID is the nominee; empty or "skip" nominates nobody
	TargetID string
}

// ConfirmInput carries an execution confirmation vote
type ConfirmInput struct {
	ScopeKey string
	HumanID  string
	Yes      bool
}

// EventOutput acknowledges an in-game event. Accepted is false for stale or
// ineligible events, which are otherwise ignored.
type EventOutput struct {
	Accepted bool
}

// CancelGameInput contains parameters for stopping a game
type CancelGameInput struct {
	ScopeKey string
}

// CancelGameOutput contains the result of stopping a game
type CancelGameOutput struct {
	// Cancelled is false when there was nothing to stop
	Cancelled bool
}

// GetStatusInput contains parameters for inspecting a game
type GetStatusInput struct {
	ScopeKey string
}

// GetStatusOutput describes a game's public state
type GetStatusOutput struct {
	GameID string
	Phase  models.Phase
	Round  int
	Alive  []string
	Dead   []string
}

// RegisterPlayerInput contains parameters for registering a player
type RegisterPlayerInput struct {
	PlayerID string
	Name     string
}

// RegisterPlayerOutput contains the registered profile
type RegisterPlayerOutput struct {
	Player  *models.Player
	Created bool
}

// GetProfileInput contains parameters for reading a profile
type GetProfileInput struct {
	PlayerID string
}

// GetProfileOutput contains a profile and its grants
type GetProfileOutput struct {
	Player       *models.Player
	Entitlements []*models.Entitlement
}

// GetLeaderboardInput contains parameters for reading the leaderboard
type GetLeaderboardInput struct {
	Limit int
}

// GetLeaderboardOutput contains the leaderboard
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GrantEntitlementInput contains parameters for granting an active-role entitlement
type GrantEntitlementInput struct {
	PlayerID string
	Games    int
}

// GrantEntitlementOutput contains the created grant
type GrantEntitlementOutput struct {
	Entitlement *models.Entitlement
}

// CanSpeakInput contains parameters for the chat moderation check
type CanSpeakInput struct {
	ScopeKey string
	HumanID  string
}

// CanSpeakOutput contains the moderation verdict
type CanSpeakOutput struct {
	Allowed bool
}
