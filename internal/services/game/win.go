package game

import "github.com/KirkDiggler/mafiabot/internal/models"

// FactionCount is the number of living participants per side
type FactionCount struct {
	Mafia int
	Town  int
}

// CountFactions tallies the living roster by faction
func CountFactions(roster []*models.Participant) FactionCount {
	var c FactionCount
	for _, p := range roster {
		if !p.Alive {
			continue
		}
		if p.Role.IsMafiaAligned() {
			c.Mafia++
		} else {
			c.Town++
		}
	}
	return c
}

// EvaluateWin returns the winning side, if any. The town wins once no
// mafia-aligned participant lives; the mafia wins on parity.
func EvaluateWin(roster []*models.Participant) (models.Faction, bool) {
	c := CountFactions(roster)
	switch {
	case c.Mafia == 0:
		return models.FactionTown, true
	case c.Mafia >= c.Town:
		return models.FactionMafia, true
	default:
		return "", false
	}
}
