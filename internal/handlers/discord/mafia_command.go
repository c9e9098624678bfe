package discord

import (
	"context"
	"errors"
	"fmt"

	playerRepo "github.com/KirkDiggler/mafiabot/internal/repositories/player"
	"github.com/KirkDiggler/mafiabot/internal/services/game"
	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const defaultLeaderboardLimit = 10

// MafiaCommand handles the /mafia command
type MafiaCommand struct {
	BaseCommand
	gameService game.Service
	presenter   messaging.Presenter
}

// NewMafiaCommand creates a new mafia command handler
func NewMafiaCommand(gameService game.Service, presenter messaging.Presenter) *MafiaCommand {
	return &MafiaCommand{
		BaseCommand: BaseCommand{
			Name:        "mafia",
			Description: "Mafia game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Open a new lobby in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Stop the game in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show who is still alive",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Create your player profile",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "profile",
					Description: "Show your points and perks",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the points leaderboard",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many players to show",
							Required:    false,
						},
					},
				},
			},
		},
		gameService: gameService,
		presenter:   presenter,
	}
}

// Handle processes a Discord interaction for the mafia command
func (c *MafiaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)
	r, err := c.execute(context.Background(), &invocation{
		channelID: i.ChannelID,
		inGuild:   i.GuildID != "",
		userID:    userID,
		username:  username,
	}, data.Options[0])
	if err != nil {
		if respErr := RespondWithError(s, i, "Something went wrong, try again."); respErr != nil {
			return errors.Join(err, respErr)
		}
		return err
	}

	return respond(s, i, r)
}

// invocation is who ran a command and where
type invocation struct {
	channelID string
	inGuild   bool
	userID    string
	username  string
}

func (c *MafiaCommand) execute(ctx context.Context, inv *invocation, sub *discordgo.ApplicationCommandInteractionDataOption) (*reply, error) {
	switch sub.Name {
	case "new":
		return c.handleNew(ctx, inv)
	case "cancel":
		return c.handleCancel(ctx, inv)
	case "status":
		return c.handleStatus(ctx, inv)
	case "register":
		return c.handleRegister(ctx, inv)
	case "profile":
		return c.handleProfile(ctx, inv)
	case "leaderboard":
		limit := defaultLeaderboardLimit
		for _, opt := range sub.Options {
			if opt.Name == "limit" && opt.IntValue() > 0 {
				limit = int(opt.IntValue())
			}
		}
		return c.handleLeaderboard(ctx, limit)
	default:
		return nil, fmt.Errorf("unknown subcommand: %s", sub.Name)
	}
}

func (c *MafiaCommand) handleNew(ctx context.Context, inv *invocation) (*reply, error) {
	if !inv.inGuild {
		return privateReply("Games are played in server channels, not DMs."), nil
	}

	out, err := c.gameService.NewGame(ctx, &game.NewGameInput{ScopeKey: inv.channelID})
	if err != nil {
		return nil, err
	}

	if out.Variant.Potato {
		return privateReply("New game opened. Potatoes are in play tonight."), nil
	}
	return privateReply("New game opened."), nil
}

func (c *MafiaCommand) handleCancel(ctx context.Context, inv *invocation) (*reply, error) {
	out, err := c.gameService.CancelGame(ctx, &game.CancelGameInput{ScopeKey: inv.channelID})
	if err != nil {
		return nil, err
	}

	if !out.Cancelled {
		return privateReply("There is no game to cancel here."), nil
	}
	return privateReply("Game cancelled."), nil
}

func (c *MafiaCommand) handleStatus(ctx context.Context, inv *invocation) (*reply, error) {
	out, err := c.gameService.GetStatus(ctx, &game.GetStatusInput{ScopeKey: inv.channelID})
	if err != nil {
		return nil, err
	}

	return publicReply(c.presenter.Status(&messaging.StatusInput{
		Phase: out.Phase,
		Round: out.Round,
		Alive: out.Alive,
		Dead:  out.Dead,
	})), nil
}

func (c *MafiaCommand) handleRegister(ctx context.Context, inv *invocation) (*reply, error) {
	out, err := c.gameService.RegisterPlayer(ctx, &game.RegisterPlayerInput{
		PlayerID: inv.userID,
		Name:     inv.username,
	})
	if err != nil {
		return nil, err
	}

	if out.Created {
		return privateReply(fmt.Sprintf("Welcome to the family, %s.", out.Player.Name)), nil
	}
	return privateReply("Your profile is up to date."), nil
}

func (c *MafiaCommand) handleProfile(ctx context.Context, inv *invocation) (*reply, error) {
	out, err := c.gameService.GetProfile(ctx, &game.GetProfileInput{PlayerID: inv.userID})
	if errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return privateReply("No profile yet. Join a game or use /mafia register."), nil
	}
	if err != nil {
		return nil, err
	}

	return privateReply(c.presenter.Profile(&messaging.ProfileInput{
		Player:       out.Player,
		Entitlements: out.Entitlements,
	})), nil
}

func (c *MafiaCommand) handleLeaderboard(ctx context.Context, limit int) (*reply, error) {
	out, err := c.gameService.GetLeaderboard(ctx, &game.GetLeaderboardInput{Limit: limit})
	if err != nil {
		return nil, err
	}

	return publicReply(c.presenter.Leaderboard(out.Leaderboard)), nil
}
