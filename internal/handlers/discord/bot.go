package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mafiabot/internal/models"
	"github.com/KirkDiggler/mafiabot/internal/services/game"
	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Acknowledgements for button presses
const (
	replyRecorded = "Got it. You can change your mind until time runs out."
	replyStale    = "That prompt is no longer open."
	replyFailed   = "Something went wrong, try again."
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	presenter   messaging.Presenter
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Session is a session created up front so the notifier can share it.
	// When nil a new one is created from Token.
	Session *discordgo.Session

	// Game service
	GameService game.Service

	// Presenter renders replies to commands
	Presenter messaging.Presenter
}

// NewSession creates a Discord session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Presenter == nil {
		return nil, errors.New("presenter cannot be nil")
	}

	session := cfg.Session
	if session == nil {
		var err error
		session, err = NewSession(cfg.Token)
		if err != nil {
			return nil, err
		}
	}

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		presenter:   cfg.Presenter,
		config:      cfg,
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range []CommandHandler{
		NewMafiaCommand(b.gameService, b.presenter),
		NewAdminCommand(b.gameService),
	} {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	log.Info().Msg("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warn().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("failed to delete command")
			continue
		}
		log.Debug().Str("command", cmdName).Str("command_id", cmdID).Msg("deleted command")
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord, globally or for the
// configured guild
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	logger := log.With().Str("command", cmd.GetName()).Logger()
	if b.config.GuildID != "" {
		logger.Info().Str("guild_id", b.config.GuildID).Msg("registering guild command")
	} else {
		logger.Info().Msg("registering global command")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to the logged-in user once the session is open
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Error().Err(err).Str("command", name).Msg("error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Error().Err(err).Str("custom_id", i.MessageComponentData().CustomID).Msg("error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks on lobby, poll and prompt messages
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)
	if userID == "" {
		return errors.New("interaction has no user")
	}

	// Starting a game sends a DM to every player, which can outlast the
	// interaction deadline, so acknowledge first and fill the reply in after
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to defer interaction: %w", err)
	}

	r, err := b.handleComponent(context.Background(), userID, username, i.MessageComponentData().CustomID)
	if err != nil {
		if editErr := editDeferred(s, i, replyFailed); editErr != nil {
			return errors.Join(err, editErr)
		}
		return err
	}

	return editDeferred(s, i, r.content)
}

// editDeferred fills in a reply that was deferred with an ephemeral flag
func editDeferred(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

// handleComponent routes a button press to the game service
func (b *Bot) handleComponent(ctx context.Context, userID, username, customID string) (*reply, error) {
	id, err := parseComponentID(customID)
	if err != nil {
		return nil, err
	}

	switch id.Action {
	case actionLobby:
		return b.handleLobbyButton(ctx, id, userID, username)
	case actionVote:
		out, err := b.gameService.CastVote(ctx, &game.CastVoteInput{
			ScopeKey: id.Scope,
			HumanID:  userID,
			Yes:      id.Value == messaging.OptionYes,
		})
		return eventReply(out, err)
	case actionNight:
		out, err := b.gameService.SubmitAction(ctx, &game.SubmitActionInput{
			ScopeKey: id.Scope,
			HumanID:  userID,
			TargetID: id.Value,
		})
		return eventReply(out, err)
	case actionNominate:
		out, err := b.gameService.Nominate(ctx, &game.NominateInput{
			ScopeKey: id.Scope,
			HumanID:  userID,
			TargetID: id.Value,
		})
		return eventReply(out, err)
	case actionConfirm:
		out, err := b.gameService.Confirm(ctx, &game.ConfirmInput{
			ScopeKey: id.Scope,
			HumanID:  userID,
			Yes:      id.Value == messaging.OptionYes,
		})
		return eventReply(out, err)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, customID)
	}
}

func (b *Bot) handleLobbyButton(ctx context.Context, id componentID, userID, username string) (*reply, error) {
	var rejected models.RejectReason
	var ack string

	switch id.Value {
	case messaging.OptionJoin:
		out, err := b.gameService.JoinGame(ctx, &game.JoinGameInput{
			ScopeKey: id.Scope,
			HumanID:  userID,
			Name:     username,
		})
		if err != nil {
			return nil, err
		}
		rejected, ack = out.Rejected, "You're in. Trust nobody."
	case messaging.OptionAddBot:
		out, err := b.gameService.AddBot(ctx, &game.AddBotInput{ScopeKey: id.Scope})
		if err != nil {
			return nil, err
		}
		rejected, ack = out.Rejected, fmt.Sprintf("%s takes a seat.", out.Name)
	case messaging.OptionStart:
		out, err := b.gameService.StartGame(ctx, &game.StartGameInput{ScopeKey: id.Scope})
		if err != nil {
			return nil, err
		}
		rejected, ack = out.Rejected, "The game begins. Check your DMs for your role."
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownComponent, id)
	}

	if rejected != models.RejectNone {
		return privateReply(b.presenter.Rejection(rejected)), nil
	}
	return privateReply(ack), nil
}

func eventReply(out *game.EventOutput, err error) (*reply, error) {
	if err != nil {
		return nil, err
	}
	if !out.Accepted {
		return privateReply(replyStale), nil
	}
	return privateReply(replyRecorded), nil
}

// handleMessageCreate enforces the game's chat rules on channel messages
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := b.moderate(context.Background(), s, m.Message); err != nil {
		log.Warn().Err(err).Str("channel_id", m.ChannelID).Msg("failed to moderate message")
	}
}

// moderate deletes a channel message whose author may not speak in the
// channel's game right now
func (b *Bot) moderate(ctx context.Context, api Messenger, m *discordgo.Message) error {
	if m == nil || m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return nil
	}

	out, err := b.gameService.CanSpeak(ctx, &game.CanSpeakInput{
		ScopeKey: m.ChannelID,
		HumanID:  m.Author.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to check speaker: %w", err)
	}
	if out.Allowed {
		return nil
	}

	if err := api.ChannelMessageDelete(m.ChannelID, m.ID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	log.Debug().Str("channel_id", m.ChannelID).Str("author_id", m.Author.ID).Msg("removed message")
	return nil
}
