package models

// Phase represents where a game session is in its cycle
type Phase string

const (
	// PhaseLobby accepts joins and bots until the game starts
	PhaseLobby Phase = "lobby"

	// PhaseNight collects secret night actions
	PhaseNight Phase = "night"

	// PhaseDay is an open discussion window
	PhaseDay Phase = "day"

	// PhaseVote is the yes/no poll on whether to lynch anyone today
	PhaseVote Phase = "vote"

	// PhaseNomination collects one private nomination per living participant
	PhaseNomination Phase = "nomination"

	// PhaseConfirmation asks everyone but the nominee to confirm the execution
	PhaseConfirmation Phase = "confirmation"

	// PhaseEnded is terminal
	PhaseEnded Phase = "ended"
)

// IsEnded returns true if the phase is terminal
func (p Phase) IsEnded() bool {
	return p == PhaseEnded
}

// IsLobby returns true if the session still accepts participants
func (p Phase) IsLobby() bool {
	return p == PhaseLobby
}

// IsInProgress returns true between the first night and the end of the game
func (p Phase) IsInProgress() bool {
	return p != PhaseLobby && p != PhaseEnded
}

// CollectsAnswers returns true for phases that wait on participant input
func (p Phase) CollectsAnswers() bool {
	switch p {
	case PhaseNight, PhaseVote, PhaseNomination, PhaseConfirmation:
		return true
	default:
		return false
	}
}

func (p Phase) String() string {
	return string(p)
}
