package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/mafiabot/internal/common/clock"
	"github.com/KirkDiggler/mafiabot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "player:"
	leaderboardKey  = "leaderboard:points"

	// Hash fields
	fieldName      = "name"
	fieldPoints    = "points"
	fieldGames     = "games"
	fieldWins      = "wins"
	fieldFirstSeen = "first_seen"

	defaultLeaderboardLimit = 10
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional; defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis hashes and a sorted set
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed player repository
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
	}
	if repo.clock == nil {
		repo.clock = &clock.DefaultClock{}
	}

	return repo, nil
}

func playerKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
}

// SavePlayer overwrites a player's profile and leaderboard score
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	firstSeen := player.FirstSeenAt
	if firstSeen.IsZero() {
		firstSeen = r.clock.Now()
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, playerKey(player.ID), map[string]interface{}{
		fieldName:      player.Name,
		fieldPoints:    player.TotalPoints,
		fieldGames:     player.TotalGames,
		fieldWins:      player.TotalWins,
		fieldFirstSeen: firstSeen.UTC().Format(time.RFC3339),
	})
	pipe.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(player.TotalPoints),
		Member: player.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return decodePlayer(input.PlayerID, fields)
}

// RegisterPlayer creates the profile if missing; the name is always refreshed
func (r *redisRepository) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	key := playerKey(input.PlayerID)
	now := r.clock.Now().UTC().Format(time.RFC3339)

	pipe := r.client.TxPipeline()
	created := pipe.HSetNX(ctx, key, fieldFirstSeen, now)
	if input.Name != "" {
		pipe.HSet(ctx, key, fieldName, input.Name)
	}
	pipe.HSetNX(ctx, key, fieldPoints, 0)
	pipe.HSetNX(ctx, key, fieldGames, 0)
	pipe.HSetNX(ctx, key, fieldWins, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	player, err := r.GetPlayer(ctx, &GetPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &RegisterPlayerOutput{
		Player:  player,
		Created: created.Val(),
	}, nil
}

// AwardPoints increments totals and the leaderboard in one transaction
func (r *redisRepository) AwardPoints(ctx context.Context, input *AwardPointsInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	key := playerKey(input.PlayerID)

	pipe := r.client.TxPipeline()
	pipe.HSetNX(ctx, key, fieldFirstSeen, r.clock.Now().UTC().Format(time.RFC3339))
	if input.Name != "" {
		pipe.HSet(ctx, key, fieldName, input.Name)
	}
	pipe.HIncrBy(ctx, key, fieldPoints, int64(input.Delta))
	pipe.HIncrBy(ctx, key, fieldGames, 1)
	if input.Won {
		pipe.HIncrBy(ctx, key, fieldWins, 1)
	}
	pipe.ZIncrBy(ctx, leaderboardKey, float64(input.Delta), input.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to award points: %w", err)
	}

	return nil
}

// GetLeaderboard returns the top players by points, highest first
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error) {
	limit := defaultLeaderboardLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	scores, err := r.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(scores) == 0 {
		return &models.Leaderboard{Entries: []*models.LeaderboardEntry{}}, nil
	}

	pipe := r.client.Pipeline()
	names := make([]*redis.StringCmd, len(scores))
	for i, z := range scores {
		names[i] = pipe.HGet(ctx, playerKey(fmt.Sprint(z.Member)), fieldName)
	}

	// Players without a name field come back as redis.Nil
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get leaderboard names: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(scores))
	for i, z := range scores {
		entries = append(entries, &models.LeaderboardEntry{
			PlayerID:   fmt.Sprint(z.Member),
			PlayerName: names[i].Val(),
			Points:     int(z.Score),
		})
	}

	return &models.Leaderboard{Entries: entries}, nil
}

func decodePlayer(playerID string, fields map[string]string) (*models.Player, error) {
	player := &models.Player{
		ID:   playerID,
		Name: fields[fieldName],
	}

	var err error
	if player.TotalPoints, err = atoi(fields[fieldPoints]); err != nil {
		return nil, fmt.Errorf("failed to parse points: %w", err)
	}
	if player.TotalGames, err = atoi(fields[fieldGames]); err != nil {
		return nil, fmt.Errorf("failed to parse games: %w", err)
	}
	if player.TotalWins, err = atoi(fields[fieldWins]); err != nil {
		return nil, fmt.Errorf("failed to parse wins: %w", err)
	}

	if v := fields[fieldFirstSeen]; v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("failed to parse first seen: %w", err)
		}
		player.FirstSeenAt = t
	}

	return player, nil
}

func atoi(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
