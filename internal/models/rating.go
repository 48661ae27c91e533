package models

import "time"

const (
	DefaultELO = 1300
	// RankedThreshold is the number of ranked games a player needs before
	// appearing on the leaderboards.
	RankedThreshold = 15
)

// Counter names a cumulative statistic on a RatingRecord.
type Counter string

const (
	CounterTurns        Counter = "turns"
	CounterHits         Counter = "hits"
	CounterHeals        Counter = "heals"
	CounterPraises      Counter = "praises"
	CounterTotalDamage  Counter = "total_damage"
	CounterTotalHealing Counter = "total_healing"
	CounterCrits        Counter = "crits"
	CounterMatches      Counter = "matches"
	CounterDeathmatches Counter = "deathmatches"
	CounterWins         Counter = "wins"
	CounterLosses       Counter = "losses"
	CounterQuits        Counter = "quits"
	CounterIdleOuts     Counter = "idle_outs"
)

// Counters lists every valid counter. The names double as column names.
var Counters = []Counter{
	CounterTurns, CounterHits, CounterHeals, CounterPraises, CounterTotalDamage,
	CounterTotalHealing, CounterCrits, CounterMatches, CounterDeathmatches,
	CounterWins, CounterLosses, CounterQuits, CounterIdleOuts,
}

func (c Counter) Valid() bool {
	for _, known := range Counters {
		if c == known {
			return true
		}
	}
	return false
}

// RatingRecord holds a player's aggregate statistics and ELO rating.
type RatingRecord struct {
	Name         string    `json:"name" db:"name"`
	Turns        int       `json:"turns" db:"turns"`
	Hits         int       `json:"hits" db:"hits"`
	Heals        int       `json:"heals" db:"heals"`
	Praises      int       `json:"praises" db:"praises"`
	TotalDamage  int       `json:"totalDamage" db:"total_damage"`
	TotalHealing int       `json:"totalHealing" db:"total_healing"`
	Crits        int       `json:"crits" db:"crits"`
	ELO          int       `json:"elo" db:"elo"`
	Matches      int       `json:"matches" db:"matches"`
	Deathmatches int       `json:"deathmatches" db:"deathmatches"`
	Wins         int       `json:"wins" db:"wins"`
	Losses       int       `json:"losses" db:"losses"`
	Quits        int       `json:"quits" db:"quits"`
	IdleOuts     int       `json:"idleOuts" db:"idle_outs"`
	FirstPlayed  time.Time `json:"firstPlayed" db:"first_played"`
	LastPlayed   time.Time `json:"lastPlayed" db:"last_played"`
}

func NewRatingRecord(name string, now time.Time) *RatingRecord {
	return &RatingRecord{
		Name:        name,
		ELO:         DefaultELO,
		FirstPlayed: now,
		LastPlayed:  now,
	}
}

// RankedGames is matches plus deathmatches; it drives the K-factor and
// leaderboard eligibility.
func (r *RatingRecord) RankedGames() int {
	return r.Matches + r.Deathmatches
}

// Balance weighs quitting twice as hard as losing.
func (r *RatingRecord) Balance() int {
	return r.Wins - (r.Losses + r.IdleOuts + r.Quits*2)
}

// Add applies amount to the named counter. It reports false for unknown counters.
func (r *RatingRecord) Add(counter Counter, amount int) bool {
	var field *int
	switch counter {
	case CounterTurns:
		field = &r.Turns
	case CounterHits:
		field = &r.Hits
	case CounterHeals:
		field = &r.Heals
	case CounterPraises:
		field = &r.Praises
	case CounterTotalDamage:
		field = &r.TotalDamage
	case CounterTotalHealing:
		field = &r.TotalHealing
	case CounterCrits:
		field = &r.Crits
	case CounterMatches:
		field = &r.Matches
	case CounterDeathmatches:
		field = &r.Deathmatches
	case CounterWins:
		field = &r.Wins
	case CounterLosses:
		field = &r.Losses
	case CounterQuits:
		field = &r.Quits
	case CounterIdleOuts:
		field = &r.IdleOuts
	default:
		return false
	}
	*field += amount
	return true
}
