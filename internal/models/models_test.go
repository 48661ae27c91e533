package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantName string
		wantArgs []string
		wantOK   bool
	}{
		{name: "bare command", text: "!heal", wantName: "heal", wantArgs: []string{}, wantOK: true},
		{name: "with args", text: "!fight bob carol", wantName: "fight", wantArgs: []string{"bob", "carol"}, wantOK: true},
		{name: "upper case name", text: "  !HIT Bob  ", wantName: "hit", wantArgs: []string{"Bob"}, wantOK: true},
		{name: "not a command", text: "hello there", wantOK: false},
		{name: "prefix only", text: "!", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, ok := ParseCommand(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestLookupAction(t *testing.T) {
	assert.Equal(t, ActionChallenge, LookupAction("fight"))
	assert.Equal(t, ActionChallenge, LookupAction("DUEL"))
	assert.Equal(t, ActionChallenge, LookupAction("deathmatch"))
	assert.Equal(t, ActionPraise, LookupAction("praise"))
	assert.Equal(t, ActionUnknown, LookupAction("raise"))
}

func TestModeRules(t *testing.T) {
	assert.False(t, ModeOpen.Ranked())
	assert.True(t, ModeDuel.Ranked())
	assert.True(t, ModeDeathmatch.Ranked())

	assert.True(t, ModeOpen.PraiseAllowed())
	assert.True(t, ModeDuel.PraiseAllowed())
	assert.False(t, ModeDeathmatch.PraiseAllowed())

	mode, ok := ModeForCommand("duel")
	require.True(t, ok)
	assert.Equal(t, ModeDuel, mode)

	mode, ok = ModeForCommand("DeathMatch")
	require.True(t, ok)
	assert.Equal(t, ModeDeathmatch, mode)

	_, ok = ModeForCommand("hit")
	assert.False(t, ok)
}

func TestIdentityHelpers(t *testing.T) {
	assert.True(t, SameID("@Bob:example.org", "@bob:EXAMPLE.org"))
	assert.False(t, SameID("@bob:example.org", "@bobby:example.org"))

	assert.Equal(t, "bob", Localpart("@bob:example.org"))
	assert.Equal(t, "bob", Localpart("bob"))
	assert.Equal(t, "bob", Localpart("@bob"))
}

func TestCombatantDefaults(t *testing.T) {
	c := NewCombatant("@bob:example.org", "")

	assert.Equal(t, "@bob:example.org", c.DisplayName)
	assert.Equal(t, MaxHP, c.HP)
	assert.Equal(t, MaxHealCharges, c.HealCharges)
	assert.Equal(t, 1, c.GuardDamageRating)
	assert.True(t, c.Alive())

	c.HP = 0
	assert.False(t, c.Alive(), "zero hp is dead")
}

func TestPendingChallenge(t *testing.T) {
	now := time.Now()
	ch := NewPendingChallenge("alice", ModeOpen, now)
	ch.Invitees = []string{"bob", "carol"}
	ch.OpenSlots = 1

	assert.Equal(t, []string{"alice"}, ch.Accepted)
	assert.Equal(t, 3, ch.Outstanding())
	assert.True(t, ch.IsInvited("BOB"))
	assert.True(t, ch.HasAccepted("Alice"))

	assert.True(t, ch.RemoveInvitee("Bob"))
	assert.False(t, ch.RemoveInvitee("bob"))
	assert.Equal(t, []string{"carol"}, ch.Invitees)

	assert.False(t, ch.Expired(now.Add(300*time.Second), 300*time.Second))
	assert.True(t, ch.Expired(now.Add(301*time.Second), 300*time.Second))
}

func TestMatchLivingAndDead(t *testing.T) {
	a := NewCombatant("a", "A")
	b := NewCombatant("b", "B")
	c := NewCombatant("c", "C")
	m := NewMatch(ModeOpen, []*Combatant{c, a, b}, time.Now())

	assert.Equal(t, []string{"c", "a", "b"}, m.TurnOrder)

	a.HP = -12
	living := m.Living()
	require.Len(t, living, 2)
	assert.Equal(t, "c", living[0].ID)
	assert.Equal(t, "b", living[1].ID)

	dead := m.Dead()
	require.Len(t, dead, 1)
	assert.Equal(t, -12, dead[0].HP, "dead hp is kept")

	assert.True(t, m.Has("A"))
	assert.False(t, m.Has("d"))
}

func TestRatingRecord(t *testing.T) {
	r := NewRatingRecord("bob", time.Now())
	assert.Equal(t, DefaultELO, r.ELO)

	require.True(t, r.Add(CounterWins, 5))
	require.True(t, r.Add(CounterLosses, 1))
	require.True(t, r.Add(CounterIdleOuts, 1))
	require.True(t, r.Add(CounterQuits, 1))
	require.True(t, r.Add(CounterMatches, 3))
	require.True(t, r.Add(CounterDeathmatches, 2))
	assert.False(t, r.Add(Counter("elo"), 1))

	assert.Equal(t, 1, r.Balance(), "5 - (1 + 1 + 2)")
	assert.Equal(t, 5, r.RankedGames())

	for _, c := range Counters {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Counter("name").Valid())
}

func TestMatchRecordSides(t *testing.T) {
	r := NewMatchRecord("id", ModeDuel, "alice", "bob", time.Now())

	r.Side("BOB").Hits++
	assert.Equal(t, 1, r.Player2.Hits)
	assert.Nil(t, r.Side("carol"))

	r.DeclareWinner("Alice")
	assert.Equal(t, 1, r.Winner)
	r.DeclareWinner("carol")
	assert.Equal(t, 1, r.Winner, "unknown names leave the winner alone")
}
