package game

import (
	"github.com/KirkDiggler/mafiabot/internal/dice"
	"github.com/KirkDiggler/mafiabot/internal/models"
)

// RolePoolConfig selects which roles a pool may contain
type RolePoolConfig struct {
	ExtraMafiaThreshold int
	EnableDeputy        bool
	EnableConsigliere   bool
	EnableMayor         bool
	EnablePetrushka     bool
}

// BuildRolePool returns exactly n roles, unshuffled: the mandatory roles, an
// extra mafioso from the threshold up, enabled optional roles while there is
// room, then civil filler.
func BuildRolePool(n int, cfg RolePoolConfig) []models.Role {
	if n <= 0 {
		return []models.Role{}
	}

	pool := []models.Role{models.RoleDon, models.RoleDoctor, models.RoleDetective, models.RoleExecutioner}
	if cfg.ExtraMafiaThreshold > 0 && n >= cfg.ExtraMafiaThreshold {
		pool = append(pool, models.RoleMafia)
	}

	optional := []struct {
		role    models.Role
		enabled bool
	}{
		{models.RoleDeputy, cfg.EnableDeputy},
		{models.RoleConsigliere, cfg.EnableConsigliere},
		{models.RoleMayor, cfg.EnableMayor},
		{models.RolePetrushka, cfg.EnablePetrushka},
	}
	for _, o := range optional {
		if o.enabled && len(pool) < n {
			pool = append(pool, o.role)
		}
	}

	for len(pool) < n {
		pool = append(pool, models.RoleCivil)
	}

	return pool[:n]
}

// DealRoles shuffles the pool onto the roster. The detective is moved onto a
// human when a bot drew it, entitled humans never keep a civil card, and in
// the potato variant every civil gets a potato.
func DealRoles(roster []*models.Participant, pool []models.Role, roller dice.Roller, entitled map[string]bool, potato bool) {
	roles := append([]models.Role(nil), pool...)
	roller.Shuffle(len(roles), func(i, j int) { roles[i], roles[j] = roles[j], roles[i] })

	for i, p := range roster {
		p.Role = roles[i]
	}

	var humans []*models.Participant
	for _, p := range roster {
		if p.IsHuman() {
			humans = append(humans, p)
		}
	}

	if len(humans) > 0 {
		for _, p := range roster {
			if p.Role == models.RoleDetective && !p.IsHuman() {
				h := humans[roller.Intn(len(humans))]
				p.Role, h.Role = h.Role, p.Role
				break
			}
		}
	}

	var active []models.Role
	for _, r := range pool {
		if r != models.RoleCivil {
			active = append(active, r)
		}
	}
	for _, p := range humans {
		if !entitled[p.ID] || p.Role != models.RoleCivil {
			continue
		}
		if len(active) == 0 {
			p.Role = models.RoleDon
			continue
		}
		p.Role = active[roller.Intn(len(active))]
	}

	for _, p := range roster {
		p.PotatoReady = potato && p.Role == models.RoleCivil
	}
}
