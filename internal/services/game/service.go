package game

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/mafiabot/internal/models"
	entitlementRepo "github.com/KirkDiggler/mafiabot/internal/repositories/entitlement"
	playerRepo "github.com/KirkDiggler/mafiabot/internal/repositories/player"
	"github.com/rs/zerolog/log"
)

// service implements the Service interface
type service struct {
	config   *Config
	registry *Registry
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	switch {
	case cfg.GameRepo == nil:
		return nil, ErrNilGameRepo
	case cfg.PlayerRepo == nil:
		return nil, ErrNilPlayerRepo
	case cfg.EntitlementRepo == nil:
		return nil, ErrNilEntitlementRepo
	case cfg.Notifier == nil:
		return nil, ErrNilNotifier
	case cfg.Presenter == nil:
		return nil, ErrNilPresenter
	case cfg.Roller == nil:
		return nil, ErrNilDiceRoller
	case cfg.Scheduler == nil:
		return nil, ErrNilScheduler
	}

	c := *cfg
	applyDefaults(&c)
	if c.MinPlayers > c.MaxPlayers {
		return nil, ErrInvalidPlayerRange
	}

	return &service{
		config:   &c,
		registry: NewRegistry(&c),
	}, nil
}

// applyDefaults fills the settings that have no meaningful zero value.
// Bot limits, probabilities and point awards may be zero and are left alone.
func applyDefaults(c *Config) {
	setInt := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	setDuration := func(v *time.Duration, def time.Duration) {
		if *v <= 0 {
			*v = def
		}
	}

	setInt(&c.MinPlayers, DefaultMinPlayers)
	setInt(&c.MaxPlayers, DefaultMaxPlayers)
	setInt(&c.ExtraMafiaThreshold, DefaultExtraMafiaThreshold)

	setDuration(&c.NightDuration, DefaultNightDuration)
	setDuration(&c.DayDuration, DefaultDayDuration)
	setDuration(&c.VoteDuration, DefaultVoteDuration)
	setDuration(&c.NominationDuration, DefaultNominationDuration)
	setDuration(&c.ConfirmationDuration, DefaultConfirmationDuration)
	if c.CountdownStep == 0 {
		c.CountdownStep = DefaultCountdownStep
	}
}

// Registry exposes the session registry so the process can restore games on boot
func (s *service) Registry() *Registry {
	return s.registry
}

// NewGame opens a fresh lobby in a chat scope, replacing any game already there
func (s *service) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	variant := models.Variant{
		Potato: s.config.EnablePotato && s.config.Roller.Float64() < s.config.PotatoChance,
	}

	_, gameID, err := s.registry.StartNew(ctx, input.ScopeKey, variant)
	if err != nil {
		return nil, err
	}

	log.Info().Str("scope", input.ScopeKey).Str("game_id", gameID).Bool("potato", variant.Potato).Msg("lobby opened")
	return &NewGameOutput{GameID: gameID, Variant: variant}, nil
}

// JoinGame seats a human in the lobby
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}
	if input.HumanID == "" {
		return nil, ErrEmptyPlayerID
	}

	sess, err := s.registry.GetOrCreate(ctx, input.ScopeKey)
	if err != nil {
		return nil, err
	}

	id, reason := sess.Join(ctx, input.HumanID, input.Name)
	if reason != models.RejectNone {
		return &JoinGameOutput{Rejected: reason}, nil
	}

	// Profiles are best effort; a failure here must not cost the seat
	_, err = s.config.PlayerRepo.RegisterPlayer(ctx, &playerRepo.RegisterPlayerInput{
		PlayerID: input.HumanID,
		Name:     input.Name,
	})
	if err != nil {
		log.Warn().Err(err).Str("human_id", input.HumanID).Msg("failed to register player")
	}

	return &JoinGameOutput{ParticipantID: id}, nil
}

// AddBot seats a scripted participant in the lobby
func (s *service) AddBot(ctx context.Context, input *AddBotInput) (*AddBotOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	sess, err := s.registry.GetOrCreate(ctx, input.ScopeKey)
	if err != nil {
		return nil, err
	}

	id, name, reason := sess.AddBot(ctx)
	return &AddBotOutput{ParticipantID: id, Name: name, Rejected: reason}, nil
}

// StartGame deals roles and begins the first night
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	sess, err := s.registry.GetOrCreate(ctx, input.ScopeKey)
	if err != nil {
		return nil, err
	}

	reason, err := sess.Start(ctx)
	return &StartGameOutput{Rejected: reason}, err
}

// SubmitAction records a night target
func (s *service) SubmitAction(ctx context.Context, input *SubmitActionInput) (*EventOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	sess, err := s.registry.GetOrCreate(ctx, input.ScopeKey)
	if err != nil {
		return nil, err
	}

	ok, err := sess.SubmitAction(ctx, input.HumanID, input.TargetID)
	return &EventOutput{Accepted: ok}, err
}

// CastVote records a yes/no on whether to lynch today
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*EventOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	sess, err := s.registry.GetOrCreate(ctx, input.ScopeKey)
	if err != nil {
		return nil, err
	}

	ok, err := sess.CastVote(ctx, input.HumanID, input.Yes)
	return &EventOutput{Accepted: ok}, err
}

// Nominate records a lynch nomination
func (s *service) Nominate(ctx context.Context, input *NominateInput) (*EventOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	sess, err := s.registry.GetOrCreate(ctx, input.ScopeKey)
	if err != nil {
		return nil, err
	}

	ok, err := sess.Nominate(ctx, input.HumanID, input.TargetID)
	return &EventOutput{Accepted: ok}, err
}

// Confirm records a yes/no on executing the nominee
func (s *service) Confirm(ctx context.Context, input *ConfirmInput) (*EventOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	sess, err := s.registry.GetOrCreate(ctx, input.ScopeKey)
	if err != nil {
		return nil, err
	}

	ok, err := sess.Confirm(ctx, input.HumanID, input.Yes)
	return &EventOutput{Accepted: ok}, err
}

// CancelGame stops the game in a chat scope
func (s *service) CancelGame(ctx context.Context, input *CancelGameInput) (*CancelGameOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	sess, err := s.registry.GetOrCreate(ctx, input.ScopeKey)
	if err != nil {
		return nil, err
	}

	cancelled, err := sess.Cancel(ctx)
	return &CancelGameOutput{Cancelled: cancelled}, err
}

// GetStatus returns the public state of the game in a chat scope
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	sess, err := s.registry.GetOrCreate(ctx, input.ScopeKey)
	if err != nil {
		return nil, err
	}

	return sess.Status(), nil
}

// RegisterPlayer creates or refreshes a player profile
func (s *service) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	out, err := s.config.PlayerRepo.RegisterPlayer(ctx, &playerRepo.RegisterPlayerInput{
		PlayerID: input.PlayerID,
		Name:     input.Name,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterPlayerOutput{Player: out.Player, Created: out.Created}, nil
}

// GetProfile returns a player's profile and grants
func (s *service) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}

	player, err := s.config.PlayerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	grants, err := s.config.EntitlementRepo.ListEntitlements(ctx, &entitlementRepo.ListEntitlementsInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	return &GetProfileOutput{Player: player, Entitlements: grants.Entitlements}, nil
}

// GetLeaderboard returns the points leaderboard
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	board, err := s.config.PlayerRepo.GetLeaderboard(ctx, &playerRepo.GetLeaderboardInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{Leaderboard: board}, nil
}

// GrantEntitlement gives a player a guaranteed active role for a number of games
func (s *service) GrantEntitlement(ctx context.Context, input *GrantEntitlementInput) (*GrantEntitlementOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrEmptyPlayerID
	}
	if input.Games < 1 {
		return nil, ErrInvalidGrant
	}

	out, err := s.config.EntitlementRepo.GrantEntitlement(ctx, &entitlementRepo.GrantEntitlementInput{
		PlayerID: input.PlayerID,
		Kind:     models.EntitlementActiveRole,
		Games:    input.Games,
	})
	if err != nil {
		return nil, err
	}

	return &GrantEntitlementOutput{Entitlement: out.Entitlement}, nil
}

// CanSpeak reports whether a human may post in the game's chat right now.
// Scopes without a live session are never moderated.
func (s *service) CanSpeak(ctx context.Context, input *CanSpeakInput) (*CanSpeakOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, ErrEmptyScope
	}

	sess, ok := s.registry.Lookup(input.ScopeKey)
	if !ok {
		return &CanSpeakOutput{Allowed: true}, nil
	}

	return &CanSpeakOutput{Allowed: sess.CanSpeak(input.HumanID)}, nil
}
