package models

import "strings"

type Mode string

const (
	ModeOpen       Mode = "open"
	ModeDuel       Mode = "duel"
	ModeDeathmatch Mode = "deathmatch"
)

// Ranked modes are strictly 1v1, disable instakills and feed the ratings.
func (m Mode) Ranked() bool {
	return m == ModeDuel || m == ModeDeathmatch
}

// PraiseAllowed is false only in deathmatches.
func (m Mode) PraiseAllowed() bool {
	return m != ModeDeathmatch
}

// ModeForCommand maps the challenge command name onto its mode.
func ModeForCommand(name string) (Mode, bool) {
	switch strings.ToLower(name) {
	case "fight":
		return ModeOpen, true
	case "duel":
		return ModeDuel, true
	case "deathmatch":
		return ModeDeathmatch, true
	}
	return "", false
}
