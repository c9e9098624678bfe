package game

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/mafiabot/internal/models"
	gameRepo "github.com/KirkDiggler/mafiabot/internal/repositories/game"
	"github.com/rs/zerolog/log"
)

// Registry maps chat scopes to their live sessions. The registry lock only
// guards the map; each session serializes its own events.
type Registry struct {
	mu       sync.Mutex
	cfg      *Config
	sessions map[string]*Session
}

// NewRegistry creates an empty registry
func NewRegistry(cfg *Config) *Registry {
	return &Registry{
		cfg:      cfg,
		sessions: make(map[string]*Session),
	}
}

// Lookup returns the in-memory session for a scope without touching storage
func (r *Registry) Lookup(scope string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[scope]
	return s, ok
}

// GetOrCreate returns the scope's session, loading its active game from
// storage the first time the scope is seen
func (r *Registry) GetOrCreate(ctx context.Context, scope string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[scope]; ok {
		return s, nil
	}

	s := newSession(r.cfg, scope)

	game, err := r.cfg.GameRepo.LoadActiveGame(ctx, &gameRepo.LoadActiveGameInput{ScopeKey: scope})
	switch {
	case errors.Is(err, gameRepo.ErrGameNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to load active game: %w", err)
	default:
		if err := s.restore(ctx, game); err != nil {
			log.Warn().Err(err).Str("scope", scope).Str("game_id", game.ID).Msg("restore finished with errors")
		}
	}

	r.sessions[scope] = s
	return s, nil
}

// StartNew resets the scope's session to a lobby backed by a freshly
// persisted game and returns the new game ID
func (r *Registry) StartNew(ctx context.Context, scope string, variant models.Variant) (*Session, string, error) {
	s, err := r.fresh(ctx, scope)
	if err != nil {
		return nil, "", err
	}

	gameID, err := s.reset(ctx, variant)
	if err != nil {
		return nil, "", err
	}
	return s, gameID, nil
}

// fresh returns the scope's session ready to be reset. A persisted active
// game that was never loaded into memory is ended first.
func (r *Registry) fresh(ctx context.Context, scope string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[scope]; ok {
		return s, nil
	}

	game, err := r.cfg.GameRepo.LoadActiveGame(ctx, &gameRepo.LoadActiveGameInput{ScopeKey: scope})
	switch {
	case errors.Is(err, gameRepo.ErrGameNotFound):
	case err != nil:
		return nil, fmt.Errorf("failed to load active game: %w", err)
	default:
		if err := r.cfg.GameRepo.EndGame(ctx, &gameRepo.EndGameInput{GameID: game.ID}); err != nil {
			return nil, fmt.Errorf("failed to end previous game: %w", err)
		}
	}

	s := newSession(r.cfg, scope)
	r.sessions[scope] = s
	return s, nil
}

// RestoreActive loads every persisted active game into memory. When a scope
// has more than one active game, the newest wins and the rest are ended.
func (r *Registry) RestoreActive(ctx context.Context) (int, error) {
	out, err := r.cfg.GameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return 0, fmt.Errorf("failed to get active games: %w", err)
	}

	newest := make(map[string]*models.Game)
	var stale []*models.Game
	for _, g := range out.Games {
		cur, ok := newest[g.ScopeKey]
		switch {
		case !ok:
			newest[g.ScopeKey] = g
		case g.CreatedAt.After(cur.CreatedAt):
			stale = append(stale, cur)
			newest[g.ScopeKey] = g
		default:
			stale = append(stale, g)
		}
	}

	for _, g := range stale {
		if err := r.cfg.GameRepo.EndGame(ctx, &gameRepo.EndGameInput{GameID: g.ID}); err != nil {
			log.Warn().Err(err).Str("game_id", g.ID).Msg("failed to end superseded game")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	restored := 0
	for scope, g := range newest {
		if _, ok := r.sessions[scope]; ok {
			continue
		}
		s := newSession(r.cfg, scope)
		if err := s.restore(ctx, g); err != nil {
			log.Warn().Err(err).Str("scope", scope).Str("game_id", g.ID).Msg("restore finished with errors")
		}
		r.sessions[scope] = s
		restored++
	}

	return restored, nil
}
