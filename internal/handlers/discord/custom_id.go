package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
)

// ErrUnknownComponent is returned for a component custom ID this bot did not issue
var ErrUnknownComponent = errors.New("unknown component")

// componentAction is the first segment of a component custom ID
type componentAction string

const (
	actionLobby    componentAction = "lobby"
	actionVote     componentAction = "vote"
	actionNight    componentAction = "act"
	actionNominate componentAction = "nom"
	actionConfirm  componentAction = "confirm"
)

const customIDSeparator = ":"

// componentID is the decoded form of a button custom ID. Private prompts are
// answered from a DM channel, so every ID carries the game's scope.
type componentID struct {
	Action componentAction
	Scope  string
	Value  string
}

func (c componentID) String() string {
	return strings.Join([]string{string(c.Action), c.Scope, c.Value}, customIDSeparator)
}

// parseComponentID decodes "<action>:<scope>:<value>"
func parseComponentID(raw string) (componentID, error) {
	parts := strings.SplitN(raw, customIDSeparator, 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return componentID{}, fmt.Errorf("%w: %q", ErrUnknownComponent, raw)
	}

	action := componentAction(parts[0])
	switch action {
	case actionLobby, actionVote, actionNight, actionNominate, actionConfirm:
	default:
		return componentID{}, fmt.Errorf("%w: %q", ErrUnknownComponent, raw)
	}

	return componentID{Action: action, Scope: parts[1], Value: parts[2]}, nil
}

// actionForKind maps a message kind to the action its buttons report
func actionForKind(kind messaging.MessageKind) (componentAction, bool) {
	switch kind {
	case messaging.KindLobby:
		return actionLobby, true
	case messaging.KindVote:
		return actionVote, true
	case messaging.KindNightAction:
		return actionNight, true
	case messaging.KindNomination:
		return actionNominate, true
	case messaging.KindConfirmation:
		return actionConfirm, true
	default:
		return "", false
	}
}
