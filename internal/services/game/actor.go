package game

import (
	"context"
	"errors"

	"github.com/KirkDiggler/mafiabot/internal/dice"
	"github.com/KirkDiggler/mafiabot/internal/models"
	"github.com/KirkDiggler/mafiabot/internal/services/messaging"
	"github.com/rs/zerolog/log"
)

// PromptKind is the question an actor is asked
type PromptKind string

const (
	PromptNight        PromptKind = "night"
	PromptVote         PromptKind = "vote"
	PromptNomination   PromptKind = "nomination"
	PromptConfirmation PromptKind = "confirmation"
)

// Prompt asks one participant for an answer in the current sub-phase
type Prompt struct {
	Kind PromptKind
	Self *models.Participant

	// Targets lists the participants the answer may name
	Targets []*models.Participant

	// Message is delivered to humans; nil when the question is public already
	Message *messaging.Message
}

// Decision is an actor's answer
type Decision struct {
	// Target is empty for a skip
	Target string
	Yes    bool
}

// Actor answers prompts. Decide returns false when the answer will arrive
// later as a separate event.
type Actor interface {
	Decide(ctx context.Context, prompt *Prompt) (Decision, bool)
}

// humanActor forwards the prompt to the human holding the seat
type humanActor struct {
	notifier messaging.Notifier
	humanID  string
}

func (a *humanActor) Decide(ctx context.Context, prompt *Prompt) (Decision, bool) {
	if prompt.Message == nil {
		return Decision{}, false
	}

	if err := a.notifier.DirectMessage(ctx, a.humanID, prompt.Message); err != nil {
		var de *messaging.DeliveryError
		if errors.As(err, &de) {
			// Unreachable human abstains this round
			log.Debug().Str("human_id", a.humanID).Err(err).Msg("prompt undeliverable")
		} else {
			log.Warn().Str("human_id", a.humanID).Err(err).Msg("failed to send prompt")
		}
	}

	return Decision{}, false
}

// scriptedActor answers immediately with fixed heuristics
type scriptedActor struct {
	roller           dice.Roller
	voteYesChance    float64
	confirmYesChance float64
}

func (a *scriptedActor) Decide(_ context.Context, prompt *Prompt) (Decision, bool) {
	switch prompt.Kind {
	case PromptVote:
		return Decision{Yes: a.roller.Float64() < a.voteYesChance}, true
	case PromptConfirmation:
		return Decision{Yes: a.roller.Float64() < a.confirmYesChance}, true
	default:
		if len(prompt.Targets) == 0 {
			return Decision{}, true
		}
		return Decision{Target: prompt.Targets[a.roller.Intn(len(prompt.Targets))].ID}, true
	}
}
