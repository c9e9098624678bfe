package game

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/mafiabot/internal/dice"
	"github.com/KirkDiggler/mafiabot/internal/models"
	"github.com/stretchr/testify/suite"
)

type RolesTestSuite struct {
	suite.Suite
	allOptional RolePoolConfig
}

func TestRolesTestSuite(t *testing.T) {
	suite.Run(t, new(RolesTestSuite))
}

func (s *RolesTestSuite) SetupTest() {
	s.allOptional = RolePoolConfig{
		ExtraMafiaThreshold: 8,
		EnableDeputy:        true,
		EnableConsigliere:   true,
		EnableMayor:         true,
		EnablePetrushka:     true,
	}
}

func (s *RolesTestSuite) TestPoolSizeMatchesRoster() {
	for n := 5; n <= 10; n++ {
		pool := BuildRolePool(n, s.allOptional)
		s.Len(pool, n, "n=%d", n)
		s.Contains(pool, models.RoleDon)
		s.Contains(pool, models.RoleDoctor)
		s.Contains(pool, models.RoleDetective)
		s.Contains(pool, models.RoleExecutioner)
	}
}

func (s *RolesTestSuite) TestExtraMafiaFromThreshold() {
	s.NotContains(BuildRolePool(7, s.allOptional), models.RoleMafia)
	s.Contains(BuildRolePool(8, s.allOptional), models.RoleMafia)
	s.Contains(BuildRolePool(10, RolePoolConfig{ExtraMafiaThreshold: 8}), models.RoleMafia)
}

func (s *RolesTestSuite) TestCivilIsOnlyFiller() {
	pool := BuildRolePool(5, s.allOptional)
	s.Equal([]models.Role{
		models.RoleDon,
		models.RoleDoctor,
		models.RoleDetective,
		models.RoleExecutioner,
		models.RoleDeputy,
	}, pool)

	pool = BuildRolePool(7, RolePoolConfig{ExtraMafiaThreshold: 8})
	s.Equal([]models.Role{
		models.RoleDon,
		models.RoleDoctor,
		models.RoleDetective,
		models.RoleExecutioner,
		models.RoleCivil,
		models.RoleCivil,
		models.RoleCivil,
	}, pool)

	for n := 5; n <= 10; n++ {
		pool := BuildRolePool(n, s.allOptional)
		seenCivil := false
		for _, r := range pool {
			if r == models.RoleCivil {
				seenCivil = true
				continue
			}
			s.False(seenCivil, "non-civil after civil at n=%d", n)
		}
	}
}

func (s *RolesTestSuite) TestEmptyPool() {
	s.Empty(BuildRolePool(0, s.allOptional))
}

func (s *RolesTestSuite) TestDetectiveAlwaysHuman() {
	for seed := int64(1); seed <= 50; seed++ {
		roster := []*models.Participant{
			{ID: "1", HumanID: "h1", Name: "Alice", Alive: true},
			{ID: "2", Name: "Vito", IsBot: true, Alive: true},
			{ID: "3", Name: "Sonny", IsBot: true, Alive: true},
			{ID: "4", Name: "Fredo", IsBot: true, Alive: true},
			{ID: "5", Name: "Luca", IsBot: true, Alive: true},
		}

		DealRoles(roster, BuildRolePool(5, s.allOptional), dice.New(&dice.Config{Seed: seed}), nil, false)

		s.Equal(models.RoleDetective, roster[0].Role, "seed=%d", seed)
	}
}

func (s *RolesTestSuite) TestDealKeepsPoolMultiset() {
	pool := BuildRolePool(9, s.allOptional)
	roster := make([]*models.Participant, 9)
	for i := range roster {
		roster[i] = &models.Participant{ID: fmt.Sprint(i + 1), HumanID: fmt.Sprintf("h%d", i+1), Alive: true}
	}

	DealRoles(roster, pool, dice.New(&dice.Config{Seed: 5}), nil, false)

	dealt := make([]models.Role, len(roster))
	for i, p := range roster {
		dealt[i] = p.Role
	}
	s.ElementsMatch(pool, dealt)
}

func (s *RolesTestSuite) TestEntitledHumansNeverCivil() {
	for seed := int64(1); seed <= 30; seed++ {
		roster := make([]*models.Participant, 7)
		entitled := make(map[string]bool)
		for i := range roster {
			id := fmt.Sprint(i + 1)
			roster[i] = &models.Participant{ID: id, HumanID: "h" + id, Alive: true}
			entitled[id] = true
		}

		DealRoles(roster, BuildRolePool(7, RolePoolConfig{ExtraMafiaThreshold: 8}), dice.New(&dice.Config{Seed: seed}), entitled, false)

		for _, p := range roster {
			s.NotEqual(models.RoleCivil, p.Role, "seed=%d participant=%s", seed, p.ID)
		}
	}
}

func (s *RolesTestSuite) TestPotatoGoesToCivils() {
	roster := make([]*models.Participant, 7)
	for i := range roster {
		id := fmt.Sprint(i + 1)
		roster[i] = &models.Participant{ID: id, HumanID: "h" + id, Alive: true}
	}

	DealRoles(roster, BuildRolePool(7, RolePoolConfig{ExtraMafiaThreshold: 8}), dice.New(&dice.Config{Seed: 11}), nil, true)

	civils := 0
	for _, p := range roster {
		s.Equal(p.Role == models.RoleCivil, p.PotatoReady)
		if p.Role == models.RoleCivil {
			civils++
		}
	}
	s.Equal(3, civils)
}
