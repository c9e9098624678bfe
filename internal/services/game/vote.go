package game

import "math"

// PollPasses reports whether the town decided to lynch today
func PollPasses(yes, no int) bool {
	return yes > no
}

// Majority is the number of nominations needed to put someone up for execution
func Majority(alive int) int {
	return alive/2 + 1
}

// TallyNominations counts nominations in voter order. Ties go to whoever
// reached the top count first. An empty winner means nobody was nominated.
func TallyNominations(voterOrder []string, nominations map[string]string) (winner string, count int) {
	counts := make(map[string]int)
	for _, voter := range voterOrder {
		target, ok := nominations[voter]
		if !ok || target == "" {
			continue
		}
		counts[target]++
		if counts[target] > count {
			count = counts[target]
			winner = target
		}
	}
	return winner, count
}

// ConfirmationPasses reports whether enough of the living town confirmed the execution
func ConfirmationPasses(yes, alive int) bool {
	return yes > alive/2
}

// RopeBreakInput describes the nominee's situation for the rope-break roll
type RopeBreakInput struct {
	Base       float64
	Multiplier float64
	Penalty    float64
	Min        float64

	NomineeIsExecutioner  bool
	ImmunityConsumed      bool
	OtherExecutionerAlive bool
}

// RopeBreakChance returns the probability that the execution fails and
// whether the executioner's one-time immunity was applied
func RopeBreakChance(in RopeBreakInput) (float64, bool) {
	p := in.Base
	applied := false

	if in.NomineeIsExecutioner && !in.ImmunityConsumed {
		p *= in.Multiplier
		applied = true
	}

	if in.OtherExecutionerAlive {
		p = math.Max(p-in.Penalty, in.Min)
	}

	return math.Min(math.Max(p, 0), 1), applied
}
