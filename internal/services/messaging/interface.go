package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_messaging.go github.com/KirkDiggler/mafiabot/internal/services/messaging Notifier,Presenter

import (
	"context"

	"github.com/KirkDiggler/mafiabot/internal/models"
)

// Notifier delivers messages to a chat transport. Every method may fail;
// an undeliverable message comes back as a *DeliveryError.
type Notifier interface {
	// Broadcast posts a message to the game's chat scope
	Broadcast(ctx context.Context, scopeKey string, msg *Message) (*MessageRef, error)

	// DirectMessage sends a private message to a human
	DirectMessage(ctx context.Context, humanID string, msg *Message) error

	// EditMessage replaces the content of a previously sent message
	EditMessage(ctx context.Context, ref *MessageRef, msg *Message) error
}

// Presenter turns game events into user-facing messages
type Presenter interface {
	Lobby(input *LobbyInput) *Message
	Rejection(reason models.RejectReason) string
	GameStarted(input *GameStartedInput) *Message
	RoleCard(input *RoleCardInput) *Message
	NightFalls(input *NightFallsInput) *Message
	NightPrompt(input *NightPromptInput) *Message
	Countdown(input *CountdownInput) *Message
	Investigation(input *InvestigationInput) *Message
	RoleSwapped(input *RoleSwappedInput) *Message
	MorningReport(input *MorningReportInput) *Message
	VotePoll(input *VotePollInput) *Message
	VoteResult(input *VoteResultInput) *Message
	NominationPrompt(input *NominationPromptInput) *Message
	NominationResult(input *NominationResultInput) *Message
	ConfirmationPrompt(input *ConfirmationPromptInput) *Message
	Execution(input *ExecutionInput) *Message
	GameOver(input *GameOverInput) *Message
	Cancelled() *Message
	Status(input *StatusInput) string
	Profile(input *ProfileInput) string
	Leaderboard(board *models.Leaderboard) string
}
