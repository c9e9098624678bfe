package game

import (
	"testing"

	"github.com/KirkDiggler/mafiabot/internal/models"
	"github.com/stretchr/testify/suite"
)

type RulesTestSuite struct {
	suite.Suite
}

func TestRulesTestSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

func seat(id, name string, role models.Role) *models.Participant {
	return &models.Participant{ID: id, HumanID: "human-" + id, Name: name, Role: role, Alive: true}
}

func (s *RulesTestSuite) TestLedgerRefusesUnpromptedActors() {
	l := NewLedger()
	l.Expect("1", ActionAttack)

	s.False(l.Record("2", "3"))
	s.True(l.Record("1", "3"))
	s.Equal(1, l.Len())
	s.True(l.Complete())
}

func (s *RulesTestSuite) TestLedgerOverwritesAndKeepsPromptOrder() {
	l := NewLedger()
	l.Expect("2", ActionHeal)
	l.Expect("1", ActionAttack)

	l.Record("1", "4")
	s.False(l.Complete())
	l.Record("2", "4")
	l.Record("1", "5")

	entries := l.Entries()
	s.Require().Len(entries, 2)
	s.Equal("2", entries[0].ActorID)
	s.Equal(ActionHeal, entries[0].Kind)
	s.Equal("1", entries[1].ActorID)
	s.Equal("5", entries[1].Target)

	entry, ok := l.Entry("1")
	s.Require().True(ok)
	s.Equal(ActionAttack, entry.Kind)
}

func (s *RulesTestSuite) TestPollPasses() {
	s.False(PollPasses(3, 4))
	s.False(PollPasses(2, 2))
	s.True(PollPasses(4, 3))
	s.False(PollPasses(0, 0))
}

func (s *RulesTestSuite) TestMajority() {
	s.Equal(4, Majority(7))
	s.Equal(4, Majority(6))
	s.Equal(3, Majority(5))
	s.Equal(2, Majority(3))
}

func (s *RulesTestSuite) TestConfirmationPasses() {
	s.True(ConfirmationPasses(4, 7))
	s.False(ConfirmationPasses(3, 7))
	s.False(ConfirmationPasses(3, 6))
	s.True(ConfirmationPasses(4, 6))
}

func (s *RulesTestSuite) TestTallyNominations() {
	order := []string{"1", "2", "3", "4", "5"}

	// Ties go to whoever got there first
	winner, count := TallyNominations(order, map[string]string{
		"1": "4",
		"2": "5",
		"3": "5",
		"4": "1",
		"5": "4",
	})
	s.Equal("5", winner)
	s.Equal(2, count)

	winner, count = TallyNominations(order, map[string]string{"1": "", "2": ""})
	s.Equal("", winner)
	s.Equal(0, count)
}

func (s *RulesTestSuite) TestRopeBreakChance() {
	base := RopeBreakInput{Base: 0.1, Multiplier: 2, Penalty: 0.2, Min: 0.05}

	p, applied := RopeBreakChance(base)
	s.InDelta(0.1, p, 1e-9)
	s.False(applied)

	in := base
	in.NomineeIsExecutioner = true
	p, applied = RopeBreakChance(in)
	s.InDelta(0.2, p, 1e-9)
	s.True(applied)

	in.ImmunityConsumed = true
	p, applied = RopeBreakChance(in)
	s.InDelta(0.1, p, 1e-9)
	s.False(applied)

	in = base
	in.OtherExecutionerAlive = true
	p, _ = RopeBreakChance(in)
	s.InDelta(0.05, p, 1e-9)

	in = RopeBreakInput{Base: 0.8, Multiplier: 2, NomineeIsExecutioner: true}
	p, _ = RopeBreakChance(in)
	s.InDelta(1.0, p, 1e-9)
}

func (s *RulesTestSuite) TestEvaluateWin() {
	roster := []*models.Participant{
		seat("1", "A", models.RoleDon),
		seat("2", "B", models.RoleDoctor),
		seat("3", "C", models.RoleCivil),
	}

	_, ok := EvaluateWin(roster)
	s.False(ok)

	roster[2].Alive = false
	winner, ok := EvaluateWin(roster)
	s.True(ok)
	s.Equal(models.FactionMafia, winner)

	roster[2].Alive = true
	roster[0].Alive = false
	winner, ok = EvaluateWin(roster)
	s.True(ok)
	s.Equal(models.FactionTown, winner)
}

func (s *RulesTestSuite) TestCountFactionsIgnoresDead() {
	roster := []*models.Participant{
		seat("1", "A", models.RoleDon),
		seat("2", "B", models.RoleConsigliere),
		seat("3", "C", models.RoleCivil),
		seat("4", "D", models.RoleExecutioner),
	}
	roster[1].Alive = false

	s.Equal(FactionCount{Mafia: 1, Town: 2}, CountFactions(roster))
}
