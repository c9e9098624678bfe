package messaging

import (
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/mafiabot/internal/dice"
	"github.com/KirkDiggler/mafiabot/internal/models"
	"github.com/stretchr/testify/suite"
)

type PresenterTestSuite struct {
	suite.Suite
	presenter *service
}

func (s *PresenterTestSuite) SetupTest() {
	p, err := NewService(&ServiceConfig{Roller: dice.New(&dice.Config{Seed: 1})})
	s.Require().NoError(err)
	s.presenter = p
}

func TestPresenterTestSuite(t *testing.T) {
	suite.Run(t, new(PresenterTestSuite))
}

func (s *PresenterTestSuite) TestNewServiceValidation() {
	_, err := NewService(nil)
	s.Error(err)

	_, err = NewService(&ServiceConfig{})
	s.Error(err)
}

func (s *PresenterTestSuite) TestLobbyCarriesControls() {
	msg := s.presenter.Lobby(&LobbyInput{
		Scope:      "channel-1",
		Names:      []string{"Alice", "Bob"},
		MinPlayers: 5,
		MaxPlayers: 10,
	})

	s.Equal(KindLobby, msg.Kind)
	s.Equal("channel-1", msg.Scope)
	s.Contains(msg.Text, "(2/10, need 5)")
	s.Contains(msg.Text, "2. Bob")
	s.Equal([]Option{
		{Label: "Join", Value: OptionJoin},
		{Label: "Add bot", Value: OptionAddBot},
		{Label: "Start", Value: OptionStart},
	}, msg.Options)
}

func (s *PresenterTestSuite) TestNightPromptAddsSkip() {
	msg := s.presenter.NightPrompt(&NightPromptInput{
		Scope: "channel-1",
		Role:  models.RoleDoctor,
		Targets: []Target{
			{ID: "1", Name: "Alice"},
			{ID: "2", Name: "Bob"},
		},
	})

	s.Equal(KindNightAction, msg.Kind)
	s.Require().Len(msg.Options, 3)
	s.Equal("1", msg.Options[0].Value)
	s.Equal(OptionSkip, msg.Options[2].Value)
	s.Contains(msg.Text, "patch")
}

func (s *PresenterTestSuite) TestNightPromptForPotato() {
	msg := s.presenter.NightPrompt(&NightPromptInput{Role: models.RoleCivil, Potato: true})
	s.Contains(msg.Text, "potato")
}

func (s *PresenterTestSuite) TestRoleCardShowsTeammates() {
	msg := s.presenter.RoleCard(&RoleCardInput{
		Role:      models.RoleDon,
		Teammates: []string{"Bob"},
	})

	s.Contains(msg.Text, "Don")
	s.Contains(msg.Text, "Your family: Bob")
}

func (s *PresenterTestSuite) TestMorningReport() {
	msg := s.presenter.MorningReport(&MorningReportInput{
		Round:  2,
		Killed: []string{"Carol"},
		Saved:  []string{"Dave"},
		Alive:  []string{"Alice", "Dave"},
		Dead:   []string{"Carol"},
	})

	s.Contains(msg.Text, "Morning 2")
	s.Contains(msg.Text, "Carol")
	s.Contains(msg.Text, "pulled Dave back")
	s.Contains(msg.Text, "Alive (2): Alice, Dave")
	s.Contains(msg.Text, "Dead (1): Carol")
}

func (s *PresenterTestSuite) TestCountdown() {
	msg := s.presenter.Countdown(&CountdownInput{Phase: models.PhaseNight, Remaining: 25 * time.Second})
	s.Equal("⏳ Night: 25s left", msg.Text)

	msg = s.presenter.Countdown(&CountdownInput{Phase: models.PhaseVote})
	s.Contains(msg.Text, "time's up")
}

func (s *PresenterTestSuite) TestExecutionOutcomes() {
	msg := s.presenter.Execution(&ExecutionInput{NomineeName: "Bob", Yes: 2, No: 4})
	s.Contains(msg.Text, "walks free")

	msg = s.presenter.Execution(&ExecutionInput{NomineeName: "Bob", Confirmed: true, RopeBroke: true})
	s.Contains(msg.Text, "rope snaps")

	msg = s.presenter.Execution(&ExecutionInput{NomineeName: "Bob", Confirmed: true, Role: models.RoleDon})
	s.Contains(msg.Text, "Bob was hanged")
	s.Contains(msg.Text, "Don")
}

func (s *PresenterTestSuite) TestNominationResult() {
	s.Contains(s.presenter.NominationResult(&NominationResultInput{}).Text, "Nobody was nominated")
	s.Contains(s.presenter.NominationResult(&NominationResultInput{Name: "Bob", Count: 3, Majority: 4}).Text, "3 of the 4")
	s.Contains(s.presenter.NominationResult(&NominationResultInput{Name: "Bob", Count: 4, Majority: 4, Passed: true}).Text, "Bob is nominated")
}

func (s *PresenterTestSuite) TestGameOverRevealsRoles() {
	msg := s.presenter.GameOver(&GameOverInput{
		Winner: models.FactionTown,
		Roster: []RosterLine{
			{Name: "Alice", Role: models.RoleDetective, Alive: true},
			{Name: "Tony", Role: models.RoleDon, IsBot: true},
		},
	})

	s.Contains(msg.Text, "town")
	s.Contains(msg.Text, "Alice: Detective")
	s.Contains(msg.Text, "Tony (bot): Don")
}

func (s *PresenterTestSuite) TestRejection() {
	for _, reason := range []models.RejectReason{
		models.RejectWrongPhase,
		models.RejectGameFull,
		models.RejectAlreadyJoined,
		models.RejectTooManyBots,
		models.RejectTooFewPlayers,
	} {
		s.NotEmpty(s.presenter.Rejection(reason), reason)
	}
}

func (s *PresenterTestSuite) TestProfileCountsGrants() {
	text := s.presenter.Profile(&ProfileInput{
		Player: &models.Player{Name: "Alice", TotalPoints: 60, TotalGames: 2, TotalWins: 1},
		Entitlements: []*models.Entitlement{
			{Kind: models.EntitlementActiveRole, RemainingGames: 2},
			{Kind: models.EntitlementActiveRole, RemainingGames: 1},
		},
	})

	s.Contains(text, "Points: 60")
	s.Contains(text, "3 more games")
}

func (s *PresenterTestSuite) TestLeaderboard() {
	s.Equal("Nobody has scored yet.", s.presenter.Leaderboard(nil))

	text := s.presenter.Leaderboard(&models.Leaderboard{Entries: []*models.LeaderboardEntry{
		{PlayerID: "user-1", PlayerName: "Alice", Points: 90},
		{PlayerID: "user-2", Points: 10},
	}})
	s.Contains(text, "1. Alice: 90")
	s.Contains(text, "2. user-2: 10")
}

func (s *PresenterTestSuite) TestDeliveryErrorUnwraps() {
	cause := errors.New("cannot send messages to this user")
	var err error = &DeliveryError{Recipient: "user-1", Err: cause}

	var de *DeliveryError
	s.True(errors.As(err, &de))
	s.Equal("user-1", de.Recipient)
	s.ErrorIs(err, cause)
}
