package player

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/mafiabot/internal/common/clock/mocks"
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

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.mockCtrl = gomock.NewController(s.T())
	mockClock := clockMocks.NewMockClock(s.mockCtrl)
	mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		Clock:       mockClock,
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

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	err := s.repo.SavePlayer(s.ctx, &SavePlayerInput{
		Player: &models.Player{
			ID:          "user-1",
			Name:        "Alice",
			TotalPoints: 120,
			TotalGames:  4,
			TotalWins:   2,
			FirstSeenAt: s.testNow,
		},
	})
	s.Require().NoError(err)

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "user-1"})
	s.Require().NoError(err)
	s.Equal("Alice", player.Name)
	s.Equal(120, player.TotalPoints)
	s.Equal(4, player.TotalGames)
	s.Equal(2, player.TotalWins)
	s.True(s.testNow.Equal(player.FirstSeenAt))
}

func (s *RedisRepositoryTestSuite) TestGetPlayerNotFound() {
	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "missing"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestRegisterPlayer() {
	out, err := s.repo.RegisterPlayer(s.ctx, &RegisterPlayerInput{PlayerID: "user-1", Name: "Alice"})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal("Alice", out.Player.Name)
	s.Equal(0, out.Player.TotalPoints)

	out, err = s.repo.RegisterPlayer(s.ctx, &RegisterPlayerInput{PlayerID: "user-1", Name: "Alicia"})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Equal("Alicia", out.Player.Name)
}

func (s *RedisRepositoryTestSuite) TestAwardPoints() {
	_, err := s.repo.RegisterPlayer(s.ctx, &RegisterPlayerInput{PlayerID: "user-1", Name: "Alice"})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.AwardPoints(s.ctx, &AwardPointsInput{PlayerID: "user-1", Delta: 50, Won: true}))
	s.Require().NoError(s.repo.AwardPoints(s.ctx, &AwardPointsInput{PlayerID: "user-1", Delta: 10}))

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "user-1"})
	s.Require().NoError(err)
	s.Equal(60, player.TotalPoints)
	s.Equal(2, player.TotalGames)
	s.Equal(1, player.TotalWins)
	s.Equal("Alice", player.Name)
}

func (s *RedisRepositoryTestSuite) TestAwardPointsCreatesProfile() {
	s.Require().NoError(s.repo.AwardPoints(s.ctx, &AwardPointsInput{
		PlayerID: "user-9", Name: "Ghost", Delta: 10,
	}))

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{PlayerID: "user-9"})
	s.Require().NoError(err)
	s.Equal("Ghost", player.Name)
	s.Equal(10, player.TotalPoints)
	s.Equal(0, player.TotalWins)
}

func (s *RedisRepositoryTestSuite) TestGetLeaderboard() {
	for _, p := range []struct {
		id     string
		name   string
		points int
	}{
		{"user-1", "Alice", 30},
		{"user-2", "Bob", 90},
		{"user-3", "Carol", 60},
	} {
		s.Require().NoError(s.repo.AwardPoints(s.ctx, &AwardPointsInput{
			PlayerID: p.id, Name: p.name, Delta: p.points,
		}))
	}

	board, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 2)
	s.Equal("Bob", board.Entries[0].PlayerName)
	s.Equal(90, board.Entries[0].Points)
	s.Equal("Carol", board.Entries[1].PlayerName)

	board, err = s.repo.GetLeaderboard(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(board.Entries, 3)
}

func (s *RedisRepositoryTestSuite) TestEmptyLeaderboard() {
	board, err := s.repo.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Empty(board.Entries)
}
