package discord

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/mafiabot/internal/models"
	playerRepo "github.com/KirkDiggler/mafiabot/internal/repositories/player"
	"github.com/KirkDiggler/mafiabot/internal/services/game"
	gameMocks "github.com/KirkDiggler/mafiabot/internal/services/game/mocks"
	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/mafiabot/internal/services/messaging/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CommandTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockService   *gameMocks.MockService
	mockPresenter *messagingMocks.MockPresenter
	mafia         *MafiaCommand
	admin         *AdminCommand
	inv           *invocation
	ctx           context.Context
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = gameMocks.NewMockService(s.mockCtrl)
	s.mockPresenter = messagingMocks.NewMockPresenter(s.mockCtrl)
	s.mafia = NewMafiaCommand(s.mockService, s.mockPresenter)
	s.admin = NewAdminCommand(s.mockService)
	s.inv = &invocation{channelID: "channel-1", inGuild: true, userID: "user-1", username: "Alice"}
	s.ctx = context.Background()
}

func (s *CommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func subcommand(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: options,
	}
}

func (s *CommandTestSuite) TestCommandDefinitions() {
	cmd := s.mafia.GetCommand()
	s.Equal("mafia", cmd.Name)
	s.Nil(cmd.DefaultMemberPermissions)
	s.Len(cmd.Options, 6)

	adminCmd := s.admin.GetCommand()
	s.Equal("mafia-admin", adminCmd.Name)
	s.Require().NotNil(adminCmd.DefaultMemberPermissions)
	s.Equal(int64(discordgo.PermissionAdministrator), *adminCmd.DefaultMemberPermissions)
}

func (s *CommandTestSuite) TestNewGame() {
	s.mockService.EXPECT().
		NewGame(s.ctx, &game.NewGameInput{ScopeKey: "channel-1"}).
		Return(&game.NewGameOutput{GameID: "game-1", Variant: models.Variant{Potato: true}}, nil)

	// Act
	r, err := s.mafia.execute(s.ctx, s.inv, subcommand("new"))

	// Assert
	s.Require().NoError(err)
	s.True(r.ephemeral)
	s.Contains(r.content, "Potatoes")
}

func (s *CommandTestSuite) TestNewGameOutsideGuild() {
	s.inv.inGuild = false

	r, err := s.mafia.execute(s.ctx, s.inv, subcommand("new"))

	s.Require().NoError(err)
	s.Contains(r.content, "server channels")
}

func (s *CommandTestSuite) TestCancelWithoutGame() {
	s.mockService.EXPECT().
		CancelGame(s.ctx, &game.CancelGameInput{ScopeKey: "channel-1"}).
		Return(&game.CancelGameOutput{Cancelled: false}, nil)

	r, err := s.mafia.execute(s.ctx, s.inv, subcommand("cancel"))

	s.Require().NoError(err)
	s.Equal("There is no game to cancel here.", r.content)
}

func (s *CommandTestSuite) TestStatusIsPublic() {
	s.mockService.EXPECT().
		GetStatus(s.ctx, &game.GetStatusInput{ScopeKey: "channel-1"}).
		Return(&game.GetStatusOutput{
			Phase: models.PhaseDay,
			Round: 2,
			Alive: []string{"Alice", "Bob"},
			Dead:  []string{"Carol"},
		}, nil)
	s.mockPresenter.EXPECT().
		Status(&messaging.StatusInput{
			Phase: models.PhaseDay,
			Round: 2,
			Alive: []string{"Alice", "Bob"},
			Dead:  []string{"Carol"},
		}).
		Return("Round 2, day.")

	r, err := s.mafia.execute(s.ctx, s.inv, subcommand("status"))

	s.Require().NoError(err)
	s.False(r.ephemeral)
	s.Equal("Round 2, day.", r.content)
}

func (s *CommandTestSuite) TestRegister() {
	s.mockService.EXPECT().
		RegisterPlayer(s.ctx, &game.RegisterPlayerInput{PlayerID: "user-1", Name: "Alice"}).
		Return(&game.RegisterPlayerOutput{Player: &models.Player{ID: "user-1", Name: "Alice"}, Created: true}, nil)

	r, err := s.mafia.execute(s.ctx, s.inv, subcommand("register"))

	s.Require().NoError(err)
	s.Equal("Welcome to the family, Alice.", r.content)
}

func (s *CommandTestSuite) TestProfileNotFound() {
	s.mockService.EXPECT().
		GetProfile(s.ctx, &game.GetProfileInput{PlayerID: "user-1"}).
		Return(nil, fmt.Errorf("lookup: %w", playerRepo.ErrPlayerNotFound))

	r, err := s.mafia.execute(s.ctx, s.inv, subcommand("profile"))

	s.Require().NoError(err)
	s.Contains(r.content, "/mafia register")
}

func (s *CommandTestSuite) TestProfile() {
	player := &models.Player{ID: "user-1", Name: "Alice", TotalPoints: 60}
	grants := []*models.Entitlement{{ID: "g1", PlayerID: "user-1", Kind: models.EntitlementActiveRole, RemainingGames: 2}}
	s.mockService.EXPECT().
		GetProfile(s.ctx, gomock.Any()).
		Return(&game.GetProfileOutput{Player: player, Entitlements: grants}, nil)
	s.mockPresenter.EXPECT().
		Profile(&messaging.ProfileInput{Player: player, Entitlements: grants}).
		Return("**Alice**")

	r, err := s.mafia.execute(s.ctx, s.inv, subcommand("profile"))

	s.Require().NoError(err)
	s.True(r.ephemeral)
	s.Equal("**Alice**", r.content)
}

func (s *CommandTestSuite) TestLeaderboardLimit() {
	board := &models.Leaderboard{}
	s.mockService.EXPECT().
		GetLeaderboard(s.ctx, &game.GetLeaderboardInput{Limit: 3}).
		Return(&game.GetLeaderboardOutput{Leaderboard: board}, nil)
	s.mockPresenter.EXPECT().
		Leaderboard(board).
		Return("Nobody has scored yet.")

	r, err := s.mafia.execute(s.ctx, s.inv, subcommand("leaderboard", &discordgo.ApplicationCommandInteractionDataOption{
		Name:  "limit",
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(3),
	}))

	s.Require().NoError(err)
	s.False(r.ephemeral)
}

func (s *CommandTestSuite) TestLeaderboardDefaultLimit() {
	s.mockService.EXPECT().
		GetLeaderboard(s.ctx, &game.GetLeaderboardInput{Limit: defaultLeaderboardLimit}).
		Return(&game.GetLeaderboardOutput{}, nil)
	s.mockPresenter.EXPECT().
		Leaderboard(gomock.Nil()).
		Return("Nobody has scored yet.")

	_, err := s.mafia.execute(s.ctx, s.inv, subcommand("leaderboard"))

	s.NoError(err)
}

func (s *CommandTestSuite) TestUnknownSubcommand() {
	_, err := s.mafia.execute(s.ctx, s.inv, subcommand("roll"))

	s.Error(err)
}

func (s *CommandTestSuite) TestGrant() {
	s.mockService.EXPECT().
		GrantEntitlement(s.ctx, &game.GrantEntitlementInput{PlayerID: "user-9", Games: 3}).
		Return(&game.GrantEntitlementOutput{}, nil)

	// Act
	r, err := s.admin.execute(s.ctx, subcommand("grant",
		&discordgo.ApplicationCommandInteractionDataOption{Name: "player", Type: discordgo.ApplicationCommandOptionUser, Value: "user-9"},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "games", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
	))

	// Assert
	s.Require().NoError(err)
	s.True(r.ephemeral)
	s.Equal("<@user-9> is guaranteed an active role for the next 3 games.", r.content)
}

func (s *CommandTestSuite) TestGrantInvalid() {
	s.mockService.EXPECT().
		GrantEntitlement(s.ctx, gomock.Any()).
		Return(nil, game.ErrInvalidGrant)

	r, err := s.admin.execute(s.ctx, subcommand("grant",
		&discordgo.ApplicationCommandInteractionDataOption{Name: "player", Type: discordgo.ApplicationCommandOptionUser, Value: "user-9"},
		&discordgo.ApplicationCommandInteractionDataOption{Name: "games", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(0)},
	))

	s.Require().NoError(err)
	s.Contains(r.content, "at least one game")
}
