package discord

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type ComponentTestSuite struct {
	suite.Suite
}

func TestComponentTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentTestSuite))
}

func (s *ComponentTestSuite) TestParseComponentID() {
	id, err := parseComponentID("act:1234567890:4")

	s.Require().NoError(err)
	s.Equal(componentID{Action: actionNight, Scope: "1234567890", Value: "4"}, id)
	s.Equal("act:1234567890:4", id.String())
}

func (s *ComponentTestSuite) TestParseKeepsColonsInValue() {
	id, err := parseComponentID("nom:channel-1:a:b")

	s.Require().NoError(err)
	s.Equal("a:b", id.Value)
}

func (s *ComponentTestSuite) TestParseRejectsForeignIDs() {
	for _, raw := range []string{"", "act", "act:channel-1", "act::4", "act:channel-1:", "roll_dice:channel-1:1"} {
		_, err := parseComponentID(raw)
		s.ErrorIs(err, ErrUnknownComponent, "raw=%q", raw)
	}
}

func (s *ComponentTestSuite) TestRenderWrapsButtonsIntoRows() {
	msg := &messaging.Message{Kind: messaging.KindNightAction, Scope: "channel-1"}
	for i := 1; i <= 10; i++ {
		msg.Options = append(msg.Options, messaging.Option{Label: fmt.Sprintf("P%d", i), Value: fmt.Sprint(i)})
	}
	msg.Options = append(msg.Options, messaging.Option{Label: "Skip", Value: messaging.OptionSkip})

	// Act
	rows := renderComponents(msg)

	// Assert
	s.Require().Len(rows, 3)
	s.Len(rows[0].(discordgo.ActionsRow).Components, 5)
	s.Len(rows[1].(discordgo.ActionsRow).Components, 5)
	last := rows[2].(discordgo.ActionsRow).Components
	s.Require().Len(last, 1)

	first := rows[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	s.Equal("P1", first.Label)
	s.Equal("act:channel-1:1", first.CustomID)
	s.Equal(discordgo.PrimaryButton, first.Style)

	skip := last[0].(discordgo.Button)
	s.Equal("act:channel-1:skip", skip.CustomID)
	s.Equal(discordgo.SecondaryButton, skip.Style)
}

func (s *ComponentTestSuite) TestRenderStopsAtRowLimit() {
	msg := &messaging.Message{Kind: messaging.KindNomination, Scope: "channel-1"}
	for i := 1; i <= 30; i++ {
		msg.Options = append(msg.Options, messaging.Option{Label: fmt.Sprint(i), Value: fmt.Sprint(i)})
	}

	rows := renderComponents(msg)

	s.Len(rows, maxRows)
	for _, row := range rows {
		s.Len(row.(discordgo.ActionsRow).Components, maxButtonsPerRow)
	}
}

func (s *ComponentTestSuite) TestRenderLobbyStyles() {
	rows := renderComponents(&messaging.Message{
		Kind:  messaging.KindLobby,
		Scope: "channel-1",
		Options: []messaging.Option{
			{Label: "Join", Value: messaging.OptionJoin},
			{Label: "Add bot", Value: messaging.OptionAddBot},
			{Label: "Start", Value: messaging.OptionStart},
		},
	})

	s.Require().Len(rows, 1)
	buttons := rows[0].(discordgo.ActionsRow).Components
	s.Equal(discordgo.PrimaryButton, buttons[0].(discordgo.Button).Style)
	s.Equal(discordgo.SecondaryButton, buttons[1].(discordgo.Button).Style)
	s.Equal(discordgo.SuccessButton, buttons[2].(discordgo.Button).Style)
	s.Equal("lobby:channel-1:start", buttons[2].(discordgo.Button).CustomID)
}

func (s *ComponentTestSuite) TestTextHasNoButtons() {
	rows := renderComponents(&messaging.Message{
		Kind:    messaging.KindText,
		Text:    "Morning.",
		Options: []messaging.Option{{Label: "ignored", Value: "x"}},
	})

	s.NotNil(rows)
	s.Empty(rows)
}
