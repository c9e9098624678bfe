package game

// ActionKind is what a night submission does
type ActionKind string

const (
	ActionAttack      ActionKind = "attack"
	ActionHeal        ActionKind = "heal"
	ActionInvestigate ActionKind = "investigate"
	ActionSwap        ActionKind = "swap"
	ActionPotato      ActionKind = "potato"
)

// LedgerEntry is one actor's submission for the current night
type LedgerEntry struct {
	ActorID string
	Kind    ActionKind

	// Target is empty when the actor skipped
	Target string
}

// Ledger maps each prompted actor to their latest submission for one night.
// Entries come back in the order actors were prompted.
type Ledger struct {
	order    []string
	expected map[string]ActionKind
	entries  map[string]*LedgerEntry
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{
		expected: make(map[string]ActionKind),
		entries:  make(map[string]*LedgerEntry),
	}
}

// Expect registers an actor as owing a submission of the given kind
func (l *Ledger) Expect(actorID string, kind ActionKind) {
	if _, ok := l.expected[actorID]; !ok {
		l.order = append(l.order, actorID)
	}
	l.expected[actorID] = kind
}

// Expected returns the kind an actor was prompted for
func (l *Ledger) Expected(actorID string) (ActionKind, bool) {
	kind, ok := l.expected[actorID]
	return kind, ok
}

// Record stores or overwrites an actor's submission. Actors that were not
// prompted are refused.
func (l *Ledger) Record(actorID, target string) bool {
	kind, ok := l.expected[actorID]
	if !ok {
		return false
	}
	l.entries[actorID] = &LedgerEntry{ActorID: actorID, Kind: kind, Target: target}
	return true
}

// Entry returns an actor's submission
func (l *Ledger) Entry(actorID string) (*LedgerEntry, bool) {
	e, ok := l.entries[actorID]
	return e, ok
}

// Entries returns every submission in prompt order
func (l *Ledger) Entries() []*LedgerEntry {
	out := make([]*LedgerEntry, 0, len(l.entries))
	for _, id := range l.order {
		if e, ok := l.entries[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Complete reports whether every prompted actor has answered
func (l *Ledger) Complete() bool {
	return len(l.entries) == len(l.expected)
}

// Len returns how many actors were prompted
func (l *Ledger) Len() int {
	return len(l.expected)
}
