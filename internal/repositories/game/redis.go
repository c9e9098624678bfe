package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mafiabot/internal/common/clock"
	"github.com/KirkDiggler/mafiabot/internal/common/uuid"
	"github.com/KirkDiggler/mafiabot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix  = "game:"
	scopeKeyPrefix = "scope:"
	activeGamesKey = "active_games"

	// maxTxRetries bounds optimistic-lock retries on participant updates
	maxTxRetries = 5
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrParticipantNotFound is returned when a participant is not part of a game
var ErrParticipantNotFound = errors.New("participant not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional; defaults to the system clock
	Clock clock.Clock

	// Optional; defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo := &redisRepository{
		client: cfg.RedisClient,
		clock:  cfg.Clock,
		uuid:   cfg.UUIDGenerator,
	}
	if repo.clock == nil {
		repo.clock = &clock.DefaultClock{}
	}
	if repo.uuid == nil {
		repo.uuid = uuid.New()
	}

	return repo, nil
}

func gameKey(gameID string) string {
	return fmt.Sprintf("%s%s", gameKeyPrefix, gameID)
}

func scopeKey(scope string) string {
	return fmt.Sprintf("%s%s", scopeKeyPrefix, scope)
}

// CreateGame allocates a new game and points the scope at it
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, errors.New("input and scope key cannot be empty")
	}

	now := r.clock.Now()
	game := &models.Game{
		ID:           r.uuid.NewUUID(),
		ScopeKey:     input.ScopeKey,
		Variant:      input.Variant,
		Participants: []*models.ParticipantRecord{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	gameJSON, err := json.Marshal(game)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKey(game.ID), gameJSON, 0)
	pipe.Set(ctx, scopeKey(game.ScopeKey), game.ID, 0)
	pipe.SAdd(ctx, activeGamesKey, game.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &CreateGameOutput{Game: game}, nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	return r.readGame(ctx, r.client, input.GameID)
}

// LoadActiveGame follows the scope mapping to the scope's active game
func (r *redisRepository) LoadActiveGame(ctx context.Context, input *LoadActiveGameInput) (*models.Game, error) {
	if input == nil || input.ScopeKey == "" {
		return nil, errors.New("input and scope key cannot be empty")
	}

	gameID, err := r.client.Get(ctx, scopeKey(input.ScopeKey)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for scope: %w", err)
	}

	game, err := r.readGame(ctx, r.client, gameID)
	if err != nil {
		return nil, err
	}

	if !game.IsActive() {
		return nil, ErrGameNotFound
	}

	return game, nil
}

// GetActiveGames retrieves all games that have not ended
func (r *redisRepository) GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, activeGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active game IDs: %w", err)
	}

	if len(gameIDs) == 0 {
		return &GetActiveGamesOutput{Games: []*models.Game{}}, nil
	}

	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd, len(gameIDs))
	for _, gameID := range gameIDs {
		gameCommands[gameID] = pipe.Get(ctx, gameKey(gameID))
	}

	// A missing key surfaces as redis.Nil from Exec; handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active games: %w", err)
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for gameID, cmd := range gameCommands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game %s: %w", gameID, err)
		}

		games = append(games, &game)
	}

	return &GetActiveGamesOutput{Games: games}, nil
}

// EndGame records the winner, drops the game from the active set and releases its scope
func (r *redisRepository) EndGame(ctx context.Context, input *EndGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	var scope string
	err := r.updateGame(ctx, input.GameID, func(game *models.Game) error {
		now := r.clock.Now()
		game.WinningSide = input.WinningSide
		game.EndedAt = &now
		scope = game.ScopeKey
		return nil
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.SRem(ctx, activeGamesKey, input.GameID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	// Only release the scope if a newer game has not already claimed it
	key := scopeKey(scope)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		if current != input.GameID {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("failed to release scope: %w", err)
	}

	return nil
}

// AddParticipant appends a participant record to the game
func (r *redisRepository) AddParticipant(ctx context.Context, input *AddParticipantInput) error {
	if input == nil || input.GameID == "" || input.Participant == nil {
		return errors.New("input, game ID and participant cannot be empty")
	}

	return r.updateGame(ctx, input.GameID, func(game *models.Game) error {
		for i, p := range game.Participants {
			if p.ID == input.Participant.ID {
				game.Participants[i] = input.Participant
				return nil
			}
		}
		game.Participants = append(game.Participants, input.Participant)
		return nil
	})
}

// SetParticipantAlive updates one participant's alive flag
func (r *redisRepository) SetParticipantAlive(ctx context.Context, input *SetParticipantAliveInput) error {
	if input == nil || input.GameID == "" || input.ParticipantID == "" {
		return errors.New("input, game ID and participant ID cannot be empty")
	}

	return r.updateParticipant(ctx, input.GameID, input.ParticipantID, func(p *models.ParticipantRecord) {
		p.Alive = input.Alive
	})
}

// SetParticipantRole updates one participant's role
func (r *redisRepository) SetParticipantRole(ctx context.Context, input *SetParticipantRoleInput) error {
	if input == nil || input.GameID == "" || input.ParticipantID == "" {
		return errors.New("input, game ID and participant ID cannot be empty")
	}

	return r.updateParticipant(ctx, input.GameID, input.ParticipantID, func(p *models.ParticipantRecord) {
		p.Role = input.Role
	})
}

func (r *redisRepository) updateParticipant(ctx context.Context, gameID, participantID string, fn func(*models.ParticipantRecord)) error {
	return r.updateGame(ctx, gameID, func(game *models.Game) error {
		for _, p := range game.Participants {
			if p.ID == participantID {
				fn(p)
				return nil
			}
		}
		return ErrParticipantNotFound
	})
}

// updateGame applies fn to the stored game under WATCH so concurrent writers do not lose updates
func (r *redisRepository) updateGame(ctx context.Context, gameID string, fn func(*models.Game) error) error {
	key := gameKey(gameID)

	txf := func(tx *redis.Tx) error {
		game, err := r.readGame(ctx, tx, gameID)
		if err != nil {
			return err
		}

		if err := fn(game); err != nil {
			return err
		}
		game.UpdatedAt = r.clock.Now()

		gameJSON, err := json.Marshal(game)
		if err != nil {
			return fmt.Errorf("failed to marshal game: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrGameNotFound) || errors.Is(err, ErrParticipantNotFound) {
			return err
		}
		return fmt.Errorf("failed to update game: %w", err)
	}

	return fmt.Errorf("failed to update game %s: too much contention", gameID)
}

// getter is satisfied by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) readGame(ctx context.Context, c getter, gameID string) (*models.Game, error) {
	gameJSON, err := c.Get(ctx, gameKey(gameID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}
