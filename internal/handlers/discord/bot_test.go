package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/mafiabot/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/mafiabot/internal/models"
	"github.com/KirkDiggler/mafiabot/internal/services/game"
	gameMocks "github.com/KirkDiggler/mafiabot/internal/services/game/mocks"
	messagingMocks "github.com/KirkDiggler/mafiabot/internal/services/messaging/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BotTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockService   *gameMocks.MockService
	mockPresenter *messagingMocks.MockPresenter
	mockAPI       *mocks.MockMessenger
	bot           *Bot
	ctx           context.Context
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = gameMocks.NewMockService(s.mockCtrl)
	s.mockPresenter = messagingMocks.NewMockPresenter(s.mockCtrl)
	s.mockAPI = mocks.NewMockMessenger(s.mockCtrl)
	s.bot = &Bot{
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: s.mockService,
		presenter:   s.mockPresenter,
		config:      &Config{},
	}
	s.ctx = context.Background()
}

func (s *BotTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BotTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Token: "token", Presenter: s.mockPresenter})
	s.Error(err)

	_, err = New(&Config{Token: "token", GameService: s.mockService})
	s.Error(err)

	_, err = New(&Config{GameService: s.mockService, Presenter: s.mockPresenter})
	s.Error(err)
}

func (s *BotTestSuite) TestNewUsesSharedSession() {
	session, err := NewSession("token")
	s.Require().NoError(err)

	bot, err := New(&Config{Session: session, GameService: s.mockService, Presenter: s.mockPresenter})

	s.Require().NoError(err)
	s.Same(session, bot.session)
}

func (s *BotTestSuite) TestJoinButton() {
	s.mockService.EXPECT().
		JoinGame(s.ctx, &game.JoinGameInput{ScopeKey: "channel-1", HumanID: "user-1", Name: "Alice"}).
		Return(&game.JoinGameOutput{ParticipantID: "1"}, nil)

	// Act
	r, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "lobby:channel-1:join")

	// Assert
	s.Require().NoError(err)
	s.True(r.ephemeral)
	s.Equal("You're in. Trust nobody.", r.content)
}

func (s *BotTestSuite) TestJoinRejected() {
	s.mockService.EXPECT().
		JoinGame(s.ctx, gomock.Any()).
		Return(&game.JoinGameOutput{Rejected: models.RejectGameFull}, nil)
	s.mockPresenter.EXPECT().
		Rejection(models.RejectGameFull).
		Return("The table is full.")

	// Act
	r, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "lobby:channel-1:join")

	// Assert
	s.Require().NoError(err)
	s.Equal("The table is full.", r.content)
}

func (s *BotTestSuite) TestAddBotButton() {
	s.mockService.EXPECT().
		AddBot(s.ctx, &game.AddBotInput{ScopeKey: "channel-1"}).
		Return(&game.AddBotOutput{ParticipantID: "2", Name: "Vito"}, nil)

	r, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "lobby:channel-1:add_bot")

	s.Require().NoError(err)
	s.Equal("Vito takes a seat.", r.content)
}

func (s *BotTestSuite) TestStartButtonTooFewPlayers() {
	s.mockService.EXPECT().
		StartGame(s.ctx, &game.StartGameInput{ScopeKey: "channel-1"}).
		Return(&game.StartGameOutput{Rejected: models.RejectTooFewPlayers}, nil)
	s.mockPresenter.EXPECT().
		Rejection(models.RejectTooFewPlayers).
		Return("Not enough players to start.")

	r, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "lobby:channel-1:start")

	s.Require().NoError(err)
	s.Equal("Not enough players to start.", r.content)
}

func (s *BotTestSuite) TestVoteButton() {
	s.mockService.EXPECT().
		CastVote(s.ctx, &game.CastVoteInput{ScopeKey: "channel-1", HumanID: "user-1", Yes: true}).
		Return(&game.EventOutput{Accepted: true}, nil)

	r, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "vote:channel-1:yes")

	s.Require().NoError(err)
	s.Equal(replyRecorded, r.content)
	s.True(r.ephemeral)
}

func (s *BotTestSuite) TestNightActionFromDM() {
	s.mockService.EXPECT().
		SubmitAction(s.ctx, &game.SubmitActionInput{ScopeKey: "channel-1", HumanID: "user-1", TargetID: "3"}).
		Return(&game.EventOutput{Accepted: false}, nil)

	r, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "act:channel-1:3")

	s.Require().NoError(err)
	s.Equal(replyStale, r.content)
}

func (s *BotTestSuite) TestNominateSkip() {
	s.mockService.EXPECT().
		Nominate(s.ctx, &game.NominateInput{ScopeKey: "channel-1", HumanID: "user-1", TargetID: "skip"}).
		Return(&game.EventOutput{Accepted: true}, nil)

	_, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "nom:channel-1:skip")

	s.NoError(err)
}

func (s *BotTestSuite) TestConfirmNo() {
	s.mockService.EXPECT().
		Confirm(s.ctx, &game.ConfirmInput{ScopeKey: "channel-1", HumanID: "user-1", Yes: false}).
		Return(&game.EventOutput{Accepted: true}, nil)

	_, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "confirm:channel-1:no")

	s.NoError(err)
}

func (s *BotTestSuite) TestUnknownComponent() {
	_, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "roll_dice")
	s.ErrorIs(err, ErrUnknownComponent)

	_, err = s.bot.handleComponent(s.ctx, "user-1", "Alice", "lobby:channel-1:roll")
	s.ErrorIs(err, ErrUnknownComponent)
}

func (s *BotTestSuite) TestServiceErrorPropagates() {
	boom := errors.New("redis down")
	s.mockService.EXPECT().
		CastVote(s.ctx, gomock.Any()).
		Return(nil, boom)

	_, err := s.bot.handleComponent(s.ctx, "user-1", "Alice", "vote:channel-1:no")

	s.ErrorIs(err, boom)
}

func (s *BotTestSuite) TestModerateDeletesSilencedMessage() {
	s.mockService.EXPECT().
		CanSpeak(s.ctx, &game.CanSpeakInput{ScopeKey: "channel-1", HumanID: "user-1"}).
		Return(&game.CanSpeakOutput{Allowed: false}, nil)
	s.mockAPI.EXPECT().
		ChannelMessageDelete("channel-1", "message-1", gomock.Any()).
		Return(nil)

	// Act
	err := s.bot.moderate(s.ctx, s.mockAPI, &discordgo.Message{
		ID:        "message-1",
		ChannelID: "channel-1",
		GuildID:   "guild-1",
		Author:    &discordgo.User{ID: "user-1"},
	})

	// Assert
	s.NoError(err)
}

func (s *BotTestSuite) TestModerateKeepsAllowedMessage() {
	s.mockService.EXPECT().
		CanSpeak(s.ctx, gomock.Any()).
		Return(&game.CanSpeakOutput{Allowed: true}, nil)

	err := s.bot.moderate(s.ctx, s.mockAPI, &discordgo.Message{
		ID:        "message-1",
		ChannelID: "channel-1",
		GuildID:   "guild-1",
		Author:    &discordgo.User{ID: "user-1"},
	})

	s.NoError(err)
}

func (s *BotTestSuite) TestModerateIgnoresBotsAndDMs() {
	s.NoError(s.bot.moderate(s.ctx, s.mockAPI, &discordgo.Message{
		ChannelID: "channel-1",
		GuildID:   "guild-1",
		Author:    &discordgo.User{ID: "bot-1", Bot: true},
	}))
	s.NoError(s.bot.moderate(s.ctx, s.mockAPI, &discordgo.Message{
		ChannelID: "dm-1",
		Author:    &discordgo.User{ID: "user-1"},
	}))
}

func (s *BotTestSuite) TestModerateDeleteFailure() {
	s.mockService.EXPECT().
		CanSpeak(s.ctx, gomock.Any()).
		Return(&game.CanSpeakOutput{Allowed: false}, nil)
	s.mockAPI.EXPECT().
		ChannelMessageDelete("channel-1", "message-1", gomock.Any()).
		Return(errors.New("missing permissions"))

	err := s.bot.moderate(s.ctx, s.mockAPI, &discordgo.Message{
		ID:        "message-1",
		ChannelID: "channel-1",
		GuildID:   "guild-1",
		Author:    &discordgo.User{ID: "user-1"},
	})

	s.Error(err)
}

func (s *BotTestSuite) TestInteractionUser() {
	id, name := interactionUser(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{Nick: "Don Alice", User: &discordgo.User{ID: "user-1", Username: "alice"}},
	}})
	s.Equal("user-1", id)
	s.Equal("Don Alice", name)

	id, name = interactionUser(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "user-2", Username: "bob"},
	}})
	s.Equal("user-2", id)
	s.Equal("bob", name)

	id, _ = interactionUser(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}})
	s.Empty(id)
}
