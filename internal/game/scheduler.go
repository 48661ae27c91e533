package game

import (
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
)

type SchedulerState int

const (
	StateNoMatch SchedulerState = iota
	StateAwaitingTurn
	StateResolving
	StateMatchOver
)

func (s SchedulerState) String() string {
	switch s {
	case StateNoMatch:
		return "no_match"
	case StateAwaitingTurn:
		return "awaiting_turn"
	case StateResolving:
		return "resolving"
	case StateMatchOver:
		return "match_over"
	}
	return "unknown"
}

type Termination int

const (
	TerminationNone Termination = iota
	TerminationWon
	TerminationDraw
)

type IdleAction int

const (
	IdleNone IdleAction = iota
	IdlePoke
	IdleForfeit
)

// TurnScheduler walks a match's fixed turn order and enforces the idle windows.
type TurnScheduler struct {
	match         *models.Match
	state         SchedulerState
	current       int
	turnStartedAt time.Time
	poked         bool

	pokeAfter    time.Duration
	forfeitAfter time.Duration
}

func NewTurnScheduler(pokeAfter, forfeitAfter time.Duration) *TurnScheduler {
	return &TurnScheduler{
		state:        StateNoMatch,
		current:      -1,
		pokeAfter:    pokeAfter,
		forfeitAfter: forfeitAfter,
	}
}

// Start takes over match and hands out the first turn.
func (s *TurnScheduler) Start(match *models.Match, now time.Time) Termination {
	s.match = match
	s.current = -1
	s.state = StateAwaitingTurn
	return s.Advance(now)
}

// Advance checks for termination first, then moves to the next living
// combatant, resetting their guard rating and the idle clock.
func (s *TurnScheduler) Advance(now time.Time) Termination {
	if s.match == nil {
		return TerminationNone
	}

	if term := s.CheckTermination(); term != TerminationNone {
		s.state = StateMatchOver
		return term
	}

	n := len(s.match.TurnOrder)
	for i := 0; i < n; i++ {
		s.current = (s.current + 1) % n
		c := s.match.Combatants[s.match.TurnOrder[s.current]]
		if !c.Alive() {
			continue
		}
		c.GuardDamageRating = 1
		s.turnStartedAt = now
		s.poked = false
		s.state = StateAwaitingTurn
		return TerminationNone
	}

	// unreachable with two or more survivors
	s.state = StateMatchOver
	return TerminationDraw
}

// CheckTermination reports Won for exactly one survivor and Draw for none.
func (s *TurnScheduler) CheckTermination() Termination {
	if s.match == nil {
		return TerminationNone
	}
	switch len(s.match.Living()) {
	case 0:
		return TerminationDraw
	case 1:
		return TerminationWon
	}
	return TerminationNone
}

// Survivor returns the single living combatant, if there is exactly one.
func (s *TurnScheduler) Survivor() (*models.Combatant, bool) {
	if s.match == nil {
		return nil, false
	}
	living := s.match.Living()
	if len(living) != 1 {
		return nil, false
	}
	return living[0], true
}

// HandleIdle yields at most one action per call: a poke once the poke
// window passed, or a forfeit (the holder is killed) once the forfeit
// window passed.
func (s *TurnScheduler) HandleIdle(now time.Time) (IdleAction, *models.Combatant) {
	holder, ok := s.Current()
	if !ok || s.state != StateAwaitingTurn {
		return IdleNone, nil
	}

	elapsed := now.Sub(s.turnStartedAt)
	switch {
	case elapsed >= s.forfeitAfter:
		holder.HP = models.DeadHP
		s.state = StateResolving
		return IdleForfeit, holder
	case elapsed > s.pokeAfter && !s.poked:
		s.poked = true
		return IdlePoke, holder
	}
	return IdleNone, nil
}

// HandleForfeit kills a living participant who quits. It reports whether
// anybody was killed and whether it was their turn.
func (s *TurnScheduler) HandleForfeit(id string) (killed, wasTurn bool) {
	if s.match == nil {
		return false, false
	}
	c, ok := s.match.Combatant(id)
	if !ok || !c.Alive() {
		return false, false
	}

	wasTurn = s.IsTurn(id)
	c.HP = models.DeadHP
	return true, wasTurn
}

// Begin marks the current turn as being resolved.
func (s *TurnScheduler) Begin() {
	if s.state == StateAwaitingTurn {
		s.state = StateResolving
	}
}

func (s *TurnScheduler) Current() (*models.Combatant, bool) {
	if s.match == nil || s.current < 0 || s.current >= len(s.match.TurnOrder) {
		return nil, false
	}
	return s.match.Combatants[s.match.TurnOrder[s.current]], true
}

func (s *TurnScheduler) IsTurn(id string) bool {
	c, ok := s.Current()
	return ok && models.SameID(c.ID, id)
}

func (s *TurnScheduler) Reset() {
	s.match = nil
	s.state = StateNoMatch
	s.current = -1
	s.turnStartedAt = time.Time{}
	s.poked = false
}

func (s *TurnScheduler) Match() *models.Match { return s.match }
func (s *TurnScheduler) State() SchedulerState { return s.state }
func (s *TurnScheduler) TurnStartedAt() time.Time { return s.turnStartedAt }
func (s *TurnScheduler) Poked() bool { return s.poked }
func (s *TurnScheduler) Running() bool { return s.match != nil }
