package models

import "time"

// Match is the authoritative state of a running game. Turn bookkeeping
// lives in the scheduler that drives it.
type Match struct {
	Mode       Mode                  `json:"mode"`
	Combatants map[string]*Combatant `json:"combatants"` // keyed by NormalizeID
	TurnOrder  []string              `json:"turnOrder"`  // NormalizeID keys
	StartedAt  time.Time             `json:"startedAt"`
}

// NewMatch seats the participants in the given order.
func NewMatch(mode Mode, participants []*Combatant, now time.Time) *Match {
	m := &Match{
		Mode:       mode,
		Combatants: make(map[string]*Combatant, len(participants)),
		StartedAt:  now,
	}
	for _, c := range participants {
		key := NormalizeID(c.ID)
		m.Combatants[key] = c
		m.TurnOrder = append(m.TurnOrder, key)
	}
	return m
}

func (m *Match) Combatant(id string) (*Combatant, bool) {
	c, ok := m.Combatants[NormalizeID(id)]
	return c, ok
}

// Ordered returns the combatants in turn order.
func (m *Match) Ordered() []*Combatant {
	out := make([]*Combatant, 0, len(m.TurnOrder))
	for _, key := range m.TurnOrder {
		out = append(out, m.Combatants[key])
	}
	return out
}

// Living returns the living combatants in turn order.
func (m *Match) Living() []*Combatant {
	var out []*Combatant
	for _, c := range m.Ordered() {
		if c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

// Dead returns the fallen combatants in turn order.
func (m *Match) Dead() []*Combatant {
	var out []*Combatant
	for _, c := range m.Ordered() {
		if !c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

func (m *Match) Has(id string) bool {
	_, ok := m.Combatants[NormalizeID(id)]
	return ok
}
