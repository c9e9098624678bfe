package messaging

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/mafiabot/internal/models"
)

// MessageKind tells the transport which controls to attach to a message
type MessageKind string

const (
	// KindText is plain text without controls
	KindText MessageKind = "text"

	// KindLobby carries join/add-bot/start controls
	KindLobby MessageKind = "lobby"

	// KindNightAction carries one option per night target
	KindNightAction MessageKind = "night_action"

	// KindVote carries the public yes/no lynch poll
	KindVote MessageKind = "vote"

	// KindNomination carries one option per nominee
	KindNomination MessageKind = "nomination"

	// KindConfirmation carries the private yes/no execution vote
	KindConfirmation MessageKind = "confirmation"
)

// Option values understood by the game engine
const (
	OptionJoin   = "join"
	OptionAddBot = "add_bot"
	OptionStart  = "start"
	OptionYes    = "yes"
	OptionNo     = "no"
	OptionSkip   = "skip"
)

// Option is one selectable answer attached to a message
type Option struct {
	// Label is what the user sees
	Label string

	// Value is what comes back to the engine when the option is picked
	Value string
}

// Message is a transport-agnostic outbound message
type Message struct {
	Kind MessageKind

	// Scope is the chat scope the message belongs to; private prompts need
	// it to route the answer back to the right game
	Scope string

	Text    string
	Options []Option
}

// MessageRef identifies a sent message so it can be edited later
type MessageRef struct {
	ChannelID string
	MessageID string
}

// DeliveryError reports that a message could not reach its recipient
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Target is a selectable participant in a prompt
type Target struct {
	ID   string
	Name string
}

// LobbyInput describes the lobby roster
type LobbyInput struct {
	Scope      string
	Names      []string
	MinPlayers int
	MaxPlayers int
	Potato     bool
}

// GameStartedInput describes the dealt table
type GameStartedInput struct {
	Names  []string
	Potato bool
}

// RoleCardInput describes a participant's secret role
type RoleCardInput struct {
	Role   models.Role
	Potato bool

	// Teammates lists the other mafia-aligned names, shown to the mafia only
	Teammates []string
}

// NightFallsInput describes the start of a night
type NightFallsInput struct {
	Round int
}

// NightPromptInput asks one participant for a night target
type NightPromptInput struct {
	Scope   string
	Role    models.Role
	Potato  bool
	Targets []Target
}

// CountdownInput describes a ticking phase timer
type CountdownInput struct {
	Phase     models.Phase
	Remaining time.Duration
}

// InvestigationInput describes one investigation finding
type InvestigationInput struct {
	TargetName string
	Role       models.Role

	// Shared marks a consigliere finding relayed to the rest of the mafia
	Shared bool
}

// RoleSwappedInput tells a participant their role was replaced
type RoleSwappedInput struct {
	NewRole models.Role
}

// MorningReportInput describes the outcome of a night
type MorningReportInput struct {
	Round  int
	Killed []string
	Saved  []string
	Alive  []string
	Dead   []string
}

// VotePollInput opens the public lynch poll
type VotePollInput struct {
	Scope string
	Round int
}

// VoteResultInput closes the public lynch poll
type VoteResultInput struct {
	Yes     int
	No      int
	Proceed bool
}

// NominationPromptInput asks one participant for a nominee
type NominationPromptInput struct {
	Scope   string
	Targets []Target
}

// NominationResultInput closes the nomination round
type NominationResultInput struct {
	// Name is empty when nobody was nominated
	Name     string
	Count    int
	Majority int
	Passed   bool
}

// ConfirmationPromptInput asks one participant to confirm an execution
type ConfirmationPromptInput struct {
	Scope       string
	NomineeName string
}

// ExecutionInput describes the outcome of a confirmation round
type ExecutionInput struct {
	NomineeName string
	Yes         int
	No          int

	// Confirmed is false when the vote did not reach a majority
	Confirmed bool

	// RopeBroke is true when the execution failed by chance
	RopeBroke bool

	// Role is revealed when the nominee dies
	Role models.Role
}

// RosterLine is one participant in an end-of-game listing
type RosterLine struct {
	Name  string
	Role  models.Role
	Alive bool
	IsBot bool
}

// GameOverInput describes the final result
type GameOverInput struct {
	Winner models.Faction
	Roster []RosterLine
}

// StatusInput describes the current game for the status command
type StatusInput struct {
	Phase models.Phase
	Round int
	Alive []string
	Dead  []string
}

// ProfileInput describes a player's profile
type ProfileInput struct {
	Player       *models.Player
	Entitlements []*models.Entitlement
}
