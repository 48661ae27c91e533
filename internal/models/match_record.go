package models

import "time"

// PraiseKind records what a ranked player's praise did.
type PraiseKind int

const (
	PraiseNone PraiseKind = iota
	PraiseOnSelf
	PraiseOnEnemy
)

// MatchPlayerStats is one side of a ranked box score.
type MatchPlayerStats struct {
	Name         string     `json:"name"`
	Hits         int        `json:"hits"`
	Heals        int        `json:"heals"`
	Crits        int        `json:"crits"`
	TotalDamage  int        `json:"totalDamage"`
	TotalHealing int        `json:"totalHealing"`
	Praise       PraiseKind `json:"praise"`
	// PraiseRoll is positive for a praise heal and negative for a praise hit.
	PraiseRoll int `json:"praiseRoll"`
}

// MatchRecord is the persisted box score of a Duel or Deathmatch.
type MatchRecord struct {
	ID        string           `json:"id"`
	Mode      Mode             `json:"mode"`
	Player1   MatchPlayerStats `json:"player1"`
	Player2   MatchPlayerStats `json:"player2"`
	Turns     int              `json:"turns"`
	Winner    int              `json:"winner"` // 0 none, 1 or 2
	CreatedAt time.Time        `json:"createdAt"`
}

func NewMatchRecord(id string, mode Mode, player1, player2 string, now time.Time) *MatchRecord {
	return &MatchRecord{
		ID:        id,
		Mode:      mode,
		Player1:   MatchPlayerStats{Name: player1},
		Player2:   MatchPlayerStats{Name: player2},
		CreatedAt: now,
	}
}

// Side returns the box score column of the named player, or nil.
func (r *MatchRecord) Side(name string) *MatchPlayerStats {
	switch {
	case SameID(r.Player1.Name, name):
		return &r.Player1
	case SameID(r.Player2.Name, name):
		return &r.Player2
	}
	return nil
}

// DeclareWinner sets Winner to the column of the named player.
func (r *MatchRecord) DeclareWinner(name string) {
	switch {
	case SameID(r.Player1.Name, name):
		r.Winner = 1
	case SameID(r.Player2.Name, name):
		r.Winner = 2
	}
}
