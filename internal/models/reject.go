package models

// RejectReason explains why a lobby command was refused
type RejectReason string

const (
	// RejectNone means the command was accepted
	RejectNone RejectReason = ""

	// RejectWrongPhase is returned for lobby commands once the game has started
	RejectWrongPhase RejectReason = "wrong_phase"

	// RejectGameFull is returned when the roster is at its maximum size
	RejectGameFull RejectReason = "game_full"

	// RejectAlreadyJoined is returned when the human already holds a seat
	RejectAlreadyJoined RejectReason = "already_joined"

	// RejectTooManyBots is returned when the bot quota is used up
	RejectTooManyBots RejectReason = "too_many_bots"

	// RejectTooFewPlayers is returned by start below the minimum roster size
	RejectTooFewPlayers RejectReason = "too_few_players"
)

func (r RejectReason) String() string {
	return string(r)
}
