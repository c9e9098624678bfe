package game

import (
	"context"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/mafiabot/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/mafiabot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/mafiabot/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	mockCtrl *gomock.Controller
	mockUUID *uuidMocks.MockUUID
	repo     Repository
	ctx      context.Context
	testNow  time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	mockClock := clockMocks.NewMockClock(s.mockCtrl)

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	repo, err := NewRedis(&Config{
		RedisClient:   s.client,
		Clock:         mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) createGame(id, scope string) *models.Game {
	s.mockUUID.EXPECT().NewUUID().Return(id)

	out, err := s.repo.CreateGame(s.ctx, &CreateGameInput{
		ScopeKey: scope,
		Variant:  models.Variant{Potato: true},
	})
	s.Require().NoError(err)
	return out.Game
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetGame() {
	created := s.createGame("game-1", "channel-1")
	s.Equal("game-1", created.ID)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal("channel-1", game.ScopeKey)
	s.True(game.Variant.Potato)
	s.True(game.IsActive())
	s.Empty(game.Participants)
	s.Equal(s.testNow.Unix(), game.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetGameNotFound() {
	_, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestLoadActiveGame() {
	s.createGame("game-1", "channel-1")

	game, err := s.repo.LoadActiveGame(s.ctx, &LoadActiveGameInput{ScopeKey: "channel-1"})
	s.Require().NoError(err)
	s.Equal("game-1", game.ID)

	_, err = s.repo.LoadActiveGame(s.ctx, &LoadActiveGameInput{ScopeKey: "channel-2"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestNewGameReplacesScope() {
	s.createGame("game-1", "channel-1")
	s.createGame("game-2", "channel-1")

	game, err := s.repo.LoadActiveGame(s.ctx, &LoadActiveGameInput{ScopeKey: "channel-1"})
	s.Require().NoError(err)
	s.Equal("game-2", game.ID)

	// Ending the superseded game must not release the newer one's scope
	s.Require().NoError(s.repo.EndGame(s.ctx, &EndGameInput{GameID: "game-1"}))

	game, err = s.repo.LoadActiveGame(s.ctx, &LoadActiveGameInput{ScopeKey: "channel-1"})
	s.Require().NoError(err)
	s.Equal("game-2", game.ID)
}

func (s *RedisRepositoryTestSuite) TestEndGame() {
	s.createGame("game-1", "channel-1")

	err := s.repo.EndGame(s.ctx, &EndGameInput{GameID: "game-1", WinningSide: models.FactionTown})
	s.Require().NoError(err)

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.False(game.IsActive())
	s.Equal(models.FactionTown, game.WinningSide)

	_, err = s.repo.LoadActiveGame(s.ctx, &LoadActiveGameInput{ScopeKey: "channel-1"})
	s.ErrorIs(err, ErrGameNotFound)

	active, err := s.repo.GetActiveGames(s.ctx, &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Empty(active.Games)
}

func (s *RedisRepositoryTestSuite) TestGetActiveGames() {
	s.createGame("game-1", "channel-1")
	s.createGame("game-2", "channel-2")
	s.Require().NoError(s.repo.EndGame(s.ctx, &EndGameInput{GameID: "game-2"}))

	active, err := s.repo.GetActiveGames(s.ctx, &GetActiveGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(active.Games, 1)
	s.Equal("game-1", active.Games[0].ID)
}

func (s *RedisRepositoryTestSuite) TestParticipantUpdates() {
	s.createGame("game-1", "channel-1")

	s.Require().NoError(s.repo.AddParticipant(s.ctx, &AddParticipantInput{
		GameID: "game-1",
		Participant: &models.ParticipantRecord{
			ID: "1", HumanID: "user-1", Name: "Alice", Role: models.RoleCivil, Alive: true,
		},
	}))
	s.Require().NoError(s.repo.AddParticipant(s.ctx, &AddParticipantInput{
		GameID: "game-1",
		Participant: &models.ParticipantRecord{
			ID: "2", Name: "Bot", Role: models.RoleDon, IsBot: true, Alive: true,
		},
	}))

	s.Require().NoError(s.repo.SetParticipantAlive(s.ctx, &SetParticipantAliveInput{
		GameID: "game-1", ParticipantID: "2", Alive: false,
	}))
	s.Require().NoError(s.repo.SetParticipantRole(s.ctx, &SetParticipantRoleInput{
		GameID: "game-1", ParticipantID: "1", Role: models.RoleMayor,
	}))

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Require().Len(game.Participants, 2)
	s.Equal(models.RoleMayor, game.Participants[0].Role)
	s.True(game.Participants[0].Alive)
	s.False(game.Participants[1].Alive)
	s.True(game.Participants[1].IsBot)

	err = s.repo.SetParticipantAlive(s.ctx, &SetParticipantAliveInput{
		GameID: "game-1", ParticipantID: "99",
	})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *RedisRepositoryTestSuite) TestConcurrentAddParticipant() {
	s.createGame("game-1", "channel-1")

	var wg sync.WaitGroup
	for _, id := range []string{"1", "2", "3", "4"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_ = s.repo.AddParticipant(s.ctx, &AddParticipantInput{
				GameID:      "game-1",
				Participant: &models.ParticipantRecord{ID: id, Name: "p" + id, Alive: true},
			})
		}(id)
	}
	wg.Wait()

	game, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Len(game.Participants, 4)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.CreateGame(s.ctx, &CreateGameInput{})
	s.Error(err)

	s.Error(s.repo.EndGame(s.ctx, nil))
	s.Error(s.repo.AddParticipant(s.ctx, &AddParticipantInput{GameID: "game-1"}))
}
