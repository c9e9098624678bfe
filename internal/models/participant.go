package models

// Participant represents one seat in a game session, held by a human or a bot
type Participant struct {
	// ID is unique within the session
	ID string

	// HumanID is the chat user ID of the human holding the seat, empty for bots
	HumanID string

	// Name is the display name
	Name string

	// IsBot marks a scripted stand-in
	IsBot bool

	// Role is the secret role assigned at game start
	Role Role

	// Alive only ever goes from true to false
	Alive bool

	// SelfHealUsed is set once a doctor has healed themself
	SelfHealUsed bool

	// PotatoReady marks a civil holding the potato charge
	PotatoReady bool

	// PotatoUsed is set once the potato has been thrown
	PotatoUsed bool

	// SwapUsed is set once a petrushka has swapped someone's role
	SwapUsed bool

	// PendingAction is the target submitted in the current collection sub-phase
	PendingAction string

	// Investigations holds this participant's night findings in order
	Investigations []string
}

// IsHuman returns true if a human holds the seat
func (p *Participant) IsHuman() bool {
	return !p.IsBot && p.HumanID != ""
}

// HasPotato returns true if the potato charge can still be thrown
func (p *Participant) HasPotato() bool {
	return p.PotatoReady && !p.PotatoUsed
}

// CanActAtNight returns true if the participant has something to do tonight
func (p *Participant) CanActAtNight() bool {
	if !p.Alive {
		return false
	}
	if p.Role == RolePetrushka {
		return !p.SwapUsed
	}
	return p.Role.HasNightAction() || p.HasPotato()
}

// Clone returns a deep copy
func (p *Participant) Clone() *Participant {
	c := *p
	if p.Investigations != nil {
		c.Investigations = append([]string(nil), p.Investigations...)
	}
	return &c
}
