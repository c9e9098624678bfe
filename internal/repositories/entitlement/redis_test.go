package entitlement

import (
	"context"
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
	mr        *miniredis.Miniredis
	client    *redis.Client
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	repo      Repository
	ctx       context.Context
	testNow   time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	repo, err := NewRedis(&Config{
		RedisClient:   s.client,
		Clock:         s.mockClock,
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

func (s *RedisRepositoryTestSuite) grant(id string, at time.Time, games int) {
	s.mockUUID.EXPECT().NewUUID().Return(id)
	s.mockClock.EXPECT().Now().Return(at)

	out, err := s.repo.GrantEntitlement(s.ctx, &GrantEntitlementInput{
		PlayerID: "user-1",
		Kind:     models.EntitlementActiveRole,
		Games:    games,
	})
	s.Require().NoError(err)
	s.Equal(id, out.Entitlement.ID)
	s.Equal(games, out.Entitlement.RemainingGames)
}

func (s *RedisRepositoryTestSuite) TestGrantAndList() {
	s.grant("grant-2", s.testNow.Add(time.Minute), 1)
	s.grant("grant-1", s.testNow, 3)

	out, err := s.repo.ListEntitlements(s.ctx, &ListEntitlementsInput{PlayerID: "user-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Entitlements, 2)
	s.Equal("grant-1", out.Entitlements[0].ID)
	s.Equal("grant-2", out.Entitlements[1].ID)
}

func (s *RedisRepositoryTestSuite) TestConsumeOldestFirst() {
	s.grant("grant-1", s.testNow, 2)
	s.grant("grant-2", s.testNow.Add(time.Minute), 1)

	ok, err := s.repo.ConsumeActiveRole(s.ctx, &ConsumeActiveRoleInput{PlayerID: "user-1"})
	s.Require().NoError(err)
	s.True(ok)

	out, err := s.repo.ListEntitlements(s.ctx, &ListEntitlementsInput{PlayerID: "user-1"})
	s.Require().NoError(err)
	s.Require().Len(out.Entitlements, 2)
	s.Equal(1, out.Entitlements[0].RemainingGames)
	s.Equal(1, out.Entitlements[1].RemainingGames)
}

func (s *RedisRepositoryTestSuite) TestConsumeUntilExhausted() {
	s.grant("grant-1", s.testNow, 2)

	for i := 0; i < 2; i++ {
		ok, err := s.repo.ConsumeActiveRole(s.ctx, &ConsumeActiveRoleInput{PlayerID: "user-1"})
		s.Require().NoError(err)
		s.True(ok)
	}

	ok, err := s.repo.ConsumeActiveRole(s.ctx, &ConsumeActiveRoleInput{PlayerID: "user-1"})
	s.Require().NoError(err)
	s.False(ok)

	out, err := s.repo.ListEntitlements(s.ctx, &ListEntitlementsInput{PlayerID: "user-1"})
	s.Require().NoError(err)
	s.Empty(out.Entitlements)
	s.False(s.mr.Exists(entitlementKey("grant-1")))
}

func (s *RedisRepositoryTestSuite) TestConsumeWithoutGrant() {
	ok, err := s.repo.ConsumeActiveRole(s.ctx, &ConsumeActiveRoleInput{PlayerID: "nobody"})
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisRepositoryTestSuite) TestGrantValidation() {
	_, err := s.repo.GrantEntitlement(s.ctx, &GrantEntitlementInput{PlayerID: "user-1"})
	s.Error(err)

	_, err = s.repo.GrantEntitlement(s.ctx, nil)
	s.Error(err)
}
