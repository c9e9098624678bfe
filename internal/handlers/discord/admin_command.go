package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/mafiabot/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

var adminPermissions int64 = discordgo.PermissionAdministrator

// AdminCommand handles /mafia-admin, visible to server administrators only
type AdminCommand struct {
	BaseCommand
	gameService game.Service
}

// NewAdminCommand creates a new admin command handler
func NewAdminCommand(gameService game.Service) *AdminCommand {
	return &AdminCommand{
		BaseCommand: BaseCommand{
			Name:        "mafia-admin",
			Description: "Mafia administration",
			Permissions: &adminPermissions,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "grant",
					Description: "Guarantee a player an active role for some games",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Who gets the grant",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "games",
							Description: "How many games it lasts",
							Required:    true,
						},
					},
				},
			},
		},
		gameService: gameService,
	}
}

// Handle processes a Discord interaction for the admin command
func (c *AdminCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	r, err := c.execute(context.Background(), data.Options[0])
	if err != nil {
		if respErr := RespondWithError(s, i, "Something went wrong, try again."); respErr != nil {
			return errors.Join(err, respErr)
		}
		return err
	}

	return respond(s, i, r)
}

func (c *AdminCommand) execute(ctx context.Context, sub *discordgo.ApplicationCommandInteractionDataOption) (*reply, error) {
	if sub.Name != "grant" {
		return nil, fmt.Errorf("unknown subcommand: %s", sub.Name)
	}

	var playerID string
	var games int
	for _, opt := range sub.Options {
		switch opt.Name {
		case "player":
			playerID = opt.UserValue(nil).ID
		case "games":
			games = int(opt.IntValue())
		}
	}

	_, err := c.gameService.GrantEntitlement(ctx, &game.GrantEntitlementInput{
		PlayerID: playerID,
		Games:    games,
	})
	switch {
	case errors.Is(err, game.ErrInvalidGrant):
		return privateReply("A grant has to cover at least one game."), nil
	case err != nil:
		return nil, err
	}

	return privateReply(fmt.Sprintf("<@%s> is guaranteed an active role for the next %d games.", playerID, games)), nil
}
