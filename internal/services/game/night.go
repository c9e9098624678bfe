package game

import (
	"fmt"

	"github.com/KirkDiggler/mafiabot/internal/dice"
	"github.com/KirkDiggler/mafiabot/internal/models"
)

// Reveal is one investigation result
type Reveal struct {
	ActorID  string
	TargetID string
	Role     models.Role

	// SharedWith lists the other mafia-aligned participants who also learn a
	// consigliere's finding
	SharedWith []string
}

// RoleSwap is the petrushka's one-shot role replacement
type RoleSwap struct {
	ActorID  string
	TargetID string
	From     models.Role
	To       models.Role
}

// NightReport is the outcome of one night
type NightReport struct {
	// Killed holds participant IDs that died, mafia kill first
	Killed []string

	// Saved holds participant IDs the doctor pulled out of the mafia kill
	Saved []string

	Reveals    []Reveal
	Swap       *RoleSwap
	PotatoHits []string
}

// swapPool is every role a petrushka swap can produce
var swapPool = func() []models.Role {
	pool := make([]models.Role, 0, len(models.AllRoles))
	for _, r := range models.AllRoles {
		if r != models.RoleDetective {
			pool = append(pool, r)
		}
	}
	return pool
}()

// ResolveNight applies the night's submissions to the roster in a fixed
// order: mafia kill, investigations, role swap, heal, potatoes, deaths.
// It mutates the roster and draws from roller only for the swap and potatoes.
func ResolveNight(ledger *Ledger, roster []*models.Participant, roller dice.Roller, potatoHitChance float64) *NightReport {
	byID := make(map[string]*models.Participant, len(roster))
	for _, p := range roster {
		byID[p.ID] = p
	}

	entries := ledger.Entries()
	report := &NightReport{}

	// live returns the acting participant and target when both are valid
	live := func(e *LedgerEntry) (*models.Participant, *models.Participant, bool) {
		actor, target := byID[e.ActorID], byID[e.Target]
		if actor == nil || target == nil || !actor.Alive || !target.Alive {
			return nil, nil, false
		}
		return actor, target, true
	}

	// 1. one lethal attack, the don's if he acted
	var attack *LedgerEntry
	for _, e := range entries {
		if e.Kind != ActionAttack {
			continue
		}
		actor, _, ok := live(e)
		if !ok {
			continue
		}
		if actor.Role == models.RoleDon {
			attack = e
			break
		}
		if attack == nil {
			attack = e
		}
	}
	kills := make([]string, 0, 2)
	if attack != nil {
		kills = append(kills, attack.Target)
	}

	// 2. investigations see roles as dealt before tonight's swap
	for _, e := range entries {
		if e.Kind != ActionInvestigate {
			continue
		}
		actor, target, ok := live(e)
		if !ok {
			continue
		}
		reveal := Reveal{ActorID: actor.ID, TargetID: target.ID, Role: target.Role}
		actor.Investigations = append(actor.Investigations, fmt.Sprintf("%s: %s", target.Name, target.Role))

		if actor.Role == models.RoleConsigliere {
			for _, p := range roster {
				if p.Alive && p.ID != actor.ID && p.Role.IsMafiaAligned() {
					reveal.SharedWith = append(reveal.SharedWith, p.ID)
				}
			}
		}
		report.Reveals = append(report.Reveals, reveal)
	}

	// 3. petrushka swap
	for _, e := range entries {
		if e.Kind != ActionSwap {
			continue
		}
		actor, target, ok := live(e)
		if !ok || actor.SwapUsed {
			continue
		}
		to := swapPool[roller.Intn(len(swapPool))]
		report.Swap = &RoleSwap{ActorID: actor.ID, TargetID: target.ID, From: target.Role, To: to}
		target.Role = to
		actor.SwapUsed = true
		break
	}

	// 4. heal removes the mafia kill only
	for _, e := range entries {
		if e.Kind != ActionHeal {
			continue
		}
		actor, target, ok := live(e)
		if !ok {
			continue
		}
		if target.ID == actor.ID {
			actor.SelfHealUsed = true
		}
		for i, id := range kills {
			if id == target.ID {
				kills = append(kills[:i], kills[i+1:]...)
				report.Saved = append(report.Saved, target.ID)
				break
			}
		}
	}

	// 5. potatoes, one independent roll each
	for _, e := range entries {
		if e.Kind != ActionPotato {
			continue
		}
		actor, target, ok := live(e)
		if !ok || !actor.HasPotato() {
			continue
		}
		actor.PotatoUsed = true
		if roller.Float64() < potatoHitChance {
			kills = append(kills, target.ID)
			report.PotatoHits = append(report.PotatoHits, target.ID)
		}
	}

	// 6. deaths
	seen := make(map[string]bool, len(kills))
	for _, id := range kills {
		if seen[id] {
			continue
		}
		seen[id] = true
		byID[id].Alive = false
		report.Killed = append(report.Killed, id)
	}

	return report
}
