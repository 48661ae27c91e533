package game

import (
	"testing"
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatch(ids ...string) *models.Match {
	var cs []*models.Combatant
	for _, id := range ids {
		cs = append(cs, models.NewCombatant(id, id))
	}
	return models.NewMatch(models.ModeOpen, cs, time.Unix(0, 0))
}

func currentID(t *testing.T, s *TurnScheduler) string {
	t.Helper()
	c, ok := s.Current()
	require.True(t, ok)
	return c.ID
}

func TestTurnScheduler_RoundRobin(t *testing.T) {
	s := NewTurnScheduler(35*time.Second, 50*time.Second)
	now := time.Unix(1000, 0)
	m := newTestMatch("a", "b", "c")

	require.Equal(t, TerminationNone, s.Start(m, now))
	assert.Equal(t, StateAwaitingTurn, s.State())
	assert.Equal(t, "a", currentID(t, s))

	for _, want := range []string{"b", "c", "a"} {
		s.Begin()
		require.Equal(t, TerminationNone, s.Advance(now))
		assert.Equal(t, want, currentID(t, s))
	}
}

func TestTurnScheduler_SkipsDeadAndResetsGuard(t *testing.T) {
	s := NewTurnScheduler(35*time.Second, 50*time.Second)
	m := newTestMatch("a", "b", "c")
	s.Start(m, time.Unix(0, 0))

	m.Combatants["b"].HP = -5
	m.Combatants["c"].GuardDamageRating = 4

	require.Equal(t, TerminationNone, s.Advance(time.Unix(10, 0)))
	assert.Equal(t, "c", currentID(t, s))
	assert.Equal(t, 1, m.Combatants["c"].GuardDamageRating)
	assert.Equal(t, time.Unix(10, 0), s.TurnStartedAt())
}

func TestTurnScheduler_Termination(t *testing.T) {
	s := NewTurnScheduler(35*time.Second, 50*time.Second)
	m := newTestMatch("a", "b")
	s.Start(m, time.Unix(0, 0))

	m.Combatants["b"].HP = 0
	assert.Equal(t, TerminationWon, s.Advance(time.Unix(1, 0)))
	assert.Equal(t, StateMatchOver, s.State())

	survivor, ok := s.Survivor()
	require.True(t, ok)
	assert.Equal(t, "a", survivor.ID)

	m.Combatants["a"].HP = -1
	assert.Equal(t, TerminationDraw, s.CheckTermination())
	_, ok = s.Survivor()
	assert.False(t, ok)
}

func TestTurnScheduler_HandleIdle(t *testing.T) {
	start := time.Unix(1000, 0)
	s := NewTurnScheduler(35*time.Second, 50*time.Second)
	m := newTestMatch("a", "b")
	s.Start(m, start)

	action, _ := s.HandleIdle(start.Add(35 * time.Second))
	assert.Equal(t, IdleNone, action, "poke needs strictly more than the window")

	action, holder := s.HandleIdle(start.Add(36 * time.Second))
	assert.Equal(t, IdlePoke, action)
	assert.Equal(t, "a", holder.ID)
	assert.True(t, s.Poked())

	action, _ = s.HandleIdle(start.Add(40 * time.Second))
	assert.Equal(t, IdleNone, action, "only one poke per turn")

	action, holder = s.HandleIdle(start.Add(50 * time.Second))
	assert.Equal(t, IdleForfeit, action)
	assert.Equal(t, "a", holder.ID)
	assert.Equal(t, models.DeadHP, holder.HP)
	assert.Equal(t, StateResolving, s.State())

	action, _ = s.HandleIdle(start.Add(90 * time.Second))
	assert.Equal(t, IdleNone, action, "nothing happens while resolving")
}

func TestTurnScheduler_AdvanceClearsPoke(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewTurnScheduler(35*time.Second, 50*time.Second)
	s.Start(newTestMatch("a", "b"), start)

	action, _ := s.HandleIdle(start.Add(40 * time.Second))
	require.Equal(t, IdlePoke, action)

	s.Advance(start.Add(41 * time.Second))
	assert.False(t, s.Poked())
	action, _ = s.HandleIdle(start.Add(50 * time.Second))
	assert.Equal(t, IdleNone, action)
}

func TestTurnScheduler_HandleForfeit(t *testing.T) {
	s := NewTurnScheduler(35*time.Second, 50*time.Second)
	m := newTestMatch("a", "b", "c")
	s.Start(m, time.Unix(0, 0))

	killed, wasTurn := s.HandleForfeit("B")
	assert.True(t, killed)
	assert.False(t, wasTurn)
	assert.Equal(t, models.DeadHP, m.Combatants["b"].HP)

	killed, _ = s.HandleForfeit("b")
	assert.False(t, killed, "already dead")

	killed, wasTurn = s.HandleForfeit("a")
	assert.True(t, killed)
	assert.True(t, wasTurn)

	killed, _ = s.HandleForfeit("zed")
	assert.False(t, killed)
}

func TestTurnScheduler_Reset(t *testing.T) {
	s := NewTurnScheduler(35*time.Second, 50*time.Second)
	s.Start(newTestMatch("a", "b"), time.Unix(0, 0))
	require.True(t, s.Running())

	s.Reset()

	assert.False(t, s.Running())
	assert.Equal(t, StateNoMatch, s.State())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.False(t, s.IsTurn("a"))
	assert.Equal(t, TerminationNone, s.Advance(time.Unix(1, 0)))
	assert.Equal(t, "no_match", s.State().String())
}
