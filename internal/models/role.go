package models

// Role is the secret card a participant holds for the whole game
type Role string

const (
	RoleDon         Role = "don"
	RoleMafia       Role = "mafia"
	RoleDoctor      Role = "doctor"
	RoleDetective   Role = "detective"
	RoleDeputy      Role = "deputy"
	RoleConsigliere Role = "consigliere"
	RoleMayor       Role = "mayor"
	RoleExecutioner Role = "executioner"
	RoleCivil       Role = "civil"
	RolePetrushka   Role = "petrushka"
)

// Faction is one of the two win-condition groups
type Faction string

const (
	// FactionMafia wins on parity with the town
	FactionMafia Faction = "mafia"

	// FactionTown wins once no mafia-aligned participant is alive
	FactionTown Faction = "town"
)

// AllRoles lists every role in a stable order
var AllRoles = []Role{
	RoleDon,
	RoleMafia,
	RoleDoctor,
	RoleDetective,
	RoleDeputy,
	RoleConsigliere,
	RoleMayor,
	RoleExecutioner,
	RoleCivil,
	RolePetrushka,
}

var factionByRole = map[Role]Faction{
	RoleDon:         FactionMafia,
	RoleMafia:       FactionMafia,
	RoleConsigliere: FactionMafia,
	RoleDoctor:      FactionTown,
	RoleDetective:   FactionTown,
	RoleDeputy:      FactionTown,
	RoleMayor:       FactionTown,
	RoleExecutioner: FactionTown,
	RoleCivil:       FactionTown,
	RolePetrushka:   FactionTown,
}

// Faction returns the side the role plays for. Unknown roles count as town.
func (r Role) Faction() Faction {
	if f, ok := factionByRole[r]; ok {
		return f
	}
	return FactionTown
}

// IsMafiaAligned reports whether the role wins with the mafia
func (r Role) IsMafiaAligned() bool {
	return r.Faction() == FactionMafia
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	_, ok := factionByRole[r]
	return ok
}

// HasNightAction reports whether the role acts on its own during the night
func (r Role) HasNightAction() bool {
	switch r {
	case RoleDon, RoleMafia, RoleDoctor, RoleDetective, RoleDeputy, RoleConsigliere, RolePetrushka:
		return true
	default:
		return false
	}
}

// IsInvestigator reports whether the role learns another participant's role at night
func (r Role) IsInvestigator() bool {
	return r == RoleDetective || r == RoleDeputy || r == RoleConsigliere
}

// IsAttacker reports whether the role can submit the mafia's kill
func (r Role) IsAttacker() bool {
	return r == RoleDon || r == RoleMafia
}

func (r Role) String() string {
	return string(r)
}
