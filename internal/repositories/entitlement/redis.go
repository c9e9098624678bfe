package entitlement

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
	entitlementKeyPrefix       = "entitlement:"
	playerEntitlementKeyPrefix = "player_entitlements:"

	maxTxRetries = 5
)

// ErrEntitlementNotFound is returned when a grant is not found
var ErrEntitlementNotFound = errors.New("entitlement not found")

// Config holds configuration for the Redis entitlement repository
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

// NewRedis creates a new Redis-backed entitlement repository
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

func entitlementKey(id string) string {
	return fmt.Sprintf("%s%s", entitlementKeyPrefix, id)
}

func playerEntitlementsKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerEntitlementKeyPrefix, playerID)
}

// GrantEntitlement stores the grant and indexes it under the player by creation time
func (r *redisRepository) GrantEntitlement(ctx context.Context, input *GrantEntitlementInput) (*GrantEntitlementOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	if input.Games < 1 {
		return nil, errors.New("games must be positive")
	}

	kind := input.Kind
	if kind == "" {
		kind = models.EntitlementActiveRole
	}

	grant := &models.Entitlement{
		ID:             r.uuid.NewUUID(),
		PlayerID:       input.PlayerID,
		Kind:           kind,
		RemainingGames: input.Games,
		CreatedAt:      r.clock.Now(),
	}

	grantJSON, err := json.Marshal(grant)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entitlement: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, entitlementKey(grant.ID), grantJSON, 0)
	pipe.ZAdd(ctx, playerEntitlementsKey(grant.PlayerID), redis.Z{
		Score:  float64(grant.CreatedAt.UnixNano()),
		Member: grant.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to grant entitlement: %w", err)
	}

	return &GrantEntitlementOutput{Entitlement: grant}, nil
}

// ListEntitlements retrieves a player's grants, oldest first
func (r *redisRepository) ListEntitlements(ctx context.Context, input *ListEntitlementsInput) (*ListEntitlementsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	ids, err := r.client.ZRange(ctx, playerEntitlementsKey(input.PlayerID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entitlement IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListEntitlementsOutput{Entitlements: []*models.Entitlement{}}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, entitlementKey(id))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get entitlements: %w", err)
	}

	grants := make([]*models.Entitlement, 0, len(ids))
	for i, cmd := range cmds {
		grantJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Consumed between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get entitlement %s: %w", ids[i], err)
		}

		var grant models.Entitlement
		if err := json.Unmarshal([]byte(grantJSON), &grant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal entitlement %s: %w", ids[i], err)
		}

		grants = append(grants, &grant)
	}

	return &ListEntitlementsOutput{Entitlements: grants}, nil
}

// ConsumeActiveRole decrements the oldest active-role grant and deletes it once exhausted
func (r *redisRepository) ConsumeActiveRole(ctx context.Context, input *ConsumeActiveRoleInput) (bool, error) {
	if input == nil || input.PlayerID == "" {
		return false, errors.New("input and player ID cannot be empty")
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		list, err := r.ListEntitlements(ctx, &ListEntitlementsInput{PlayerID: input.PlayerID})
		if err != nil {
			return false, err
		}

		var target *models.Entitlement
		for _, grant := range list.Entitlements {
			if grant.Kind == models.EntitlementActiveRole && grant.RemainingGames > 0 {
				target = grant
				break
			}
		}
		if target == nil {
			return false, nil
		}

		err = r.decrement(ctx, target.ID)
		if err == nil {
			return true, nil
		}
		if errors.Is(err, redis.TxFailedErr) || errors.Is(err, ErrEntitlementNotFound) {
			continue
		}
		return false, fmt.Errorf("failed to consume entitlement: %w", err)
	}

	return false, fmt.Errorf("failed to consume entitlement for %s: too much contention", input.PlayerID)
}

func (r *redisRepository) decrement(ctx context.Context, id string) error {
	key := entitlementKey(id)

	return r.client.Watch(ctx, func(tx *redis.Tx) error {
		grantJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrEntitlementNotFound
			}
			return err
		}

		var grant models.Entitlement
		if err := json.Unmarshal([]byte(grantJSON), &grant); err != nil {
			return fmt.Errorf("failed to unmarshal entitlement: %w", err)
		}
		if grant.RemainingGames < 1 {
			return ErrEntitlementNotFound
		}
		grant.RemainingGames--

		updated, err := json.Marshal(&grant)
		if err != nil {
			return fmt.Errorf("failed to marshal entitlement: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if grant.RemainingGames == 0 {
				pipe.Del(ctx, key)
				pipe.ZRem(ctx, playerEntitlementsKey(grant.PlayerID), grant.ID)
				return nil
			}
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}, key)
}
