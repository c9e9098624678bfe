package discord

import (
	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Discord allows five buttons per row and five rows per message
const (
	maxButtonsPerRow = 5
	maxRows          = 5
)

const (
	colorNeutral = 0x5865f2
	colorNight   = 0x2c2f33
	colorVote    = 0xfaa61a
	colorDanger  = 0xff0000
)

// renderEmbeds wraps the message text in a single embed
func renderEmbeds(msg *messaging.Message) []*discordgo.MessageEmbed {
	return []*discordgo.MessageEmbed{
		{
			Description: msg.Text,
			Color:       kindColor(msg.Kind),
		},
	}
}

// renderComponents turns the message options into rows of buttons. Messages
// without controls render to an empty, non-nil slice so an edit clears any
// buttons the previous version had.
func renderComponents(msg *messaging.Message) []discordgo.MessageComponent {
	rows := []discordgo.MessageComponent{}

	action, ok := actionForKind(msg.Kind)
	if !ok {
		return rows
	}

	var row []discordgo.MessageComponent
	for _, opt := range msg.Options {
		if len(row) == maxButtonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
		if len(rows) == maxRows {
			break
		}

		row = append(row, discordgo.Button{
			Label:    opt.Label,
			Style:    buttonStyle(opt.Value),
			CustomID: componentID{Action: action, Scope: msg.Scope, Value: opt.Value}.String(),
		})
	}
	if len(row) > 0 && len(rows) < maxRows {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}

	return rows
}

func buttonStyle(value string) discordgo.ButtonStyle {
	switch value {
	case messaging.OptionYes, messaging.OptionStart:
		return discordgo.SuccessButton
	case messaging.OptionNo:
		return discordgo.DangerButton
	case messaging.OptionSkip, messaging.OptionAddBot:
		return discordgo.SecondaryButton
	default:
		return discordgo.PrimaryButton
	}
}

func kindColor(kind messaging.MessageKind) int {
	switch kind {
	case messaging.KindNightAction:
		return colorNight
	case messaging.KindVote, messaging.KindNomination, messaging.KindConfirmation:
		return colorVote
	default:
		return colorNeutral
	}
}
