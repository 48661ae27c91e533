package models

import "strings"

const (
	MaxHP          = 100
	MaxHealCharges = 5
	// DeadHP is written when a combatant is removed without a damage roll
	// (instakill, idle-out, quit).
	DeadHP = -1
)

// Combatant is one participant's battle state inside a running match.
type Combatant struct {
	ID                string `json:"id"`
	DisplayName       string `json:"displayName"`
	HP                int    `json:"hp"`
	HealCharges       int    `json:"healCharges"`
	GuardDamageRating int    `json:"guardDamageRating"`
	HasPraised        bool   `json:"hasPraised"`
}

func NewCombatant(id, displayName string) *Combatant {
	if displayName == "" {
		displayName = id
	}
	return &Combatant{
		ID:                id,
		DisplayName:       displayName,
		HP:                MaxHP,
		HealCharges:       MaxHealCharges,
		GuardDamageRating: 1,
	}
}

// Alive reports hp > 0. The exact negative value of a dead combatant is kept.
func (c *Combatant) Alive() bool {
	return c.HP > 0
}

// NormalizeID is the case-insensitive key used for every identity lookup.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Localpart strips the sigil and server from an account id: "@bob:server" is "bob".
func Localpart(id string) string {
	id = strings.TrimPrefix(id, "@")
	if i := strings.IndexByte(id, ':'); i >= 0 {
		id = id[:i]
	}
	return id
}

// SameID compares two identities case-insensitively.
func SameID(a, b string) bool {
	return NormalizeID(a) == NormalizeID(b)
}
