package game

import (
	"testing"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fighters() (*models.Combatant, *models.Combatant) {
	return models.NewCombatant("alice", "alice"), models.NewCombatant("bob", "bob")
}

func TestResolveHit(t *testing.T) {
	tests := []struct {
		name       string
		mode       models.Mode
		rolls      []int
		targetGDR  int
		modifier   float64
		forced     bool
		wantKind   OutcomeKind
		wantDamage int
		wantCount  bool
	}{
		{name: "plain hit", mode: models.ModeOpen, rolls: []int{2, 2, 20}, targetGDR: 1, wantKind: KindHit, wantDamage: 20},
		{name: "max damage", mode: models.ModeDuel, rolls: []int{2, 35}, targetGDR: 1, wantKind: KindHit, wantDamage: 35},
		{name: "critical doubles", mode: models.ModeDuel, rolls: []int{1, 30}, targetGDR: 1, wantKind: KindCriticalHit, wantDamage: 60, wantCount: true},
		{name: "critical ignores guard", mode: models.ModeDuel, rolls: []int{1, 30}, targetGDR: 3, wantKind: KindCriticalHit, wantDamage: 60, wantCount: true},
		{name: "forced critical skips crit roll", mode: models.ModeDuel, rolls: []int{25}, targetGDR: 1, forced: true, wantKind: KindCriticalHit, wantDamage: 50},
		{name: "guard halves", mode: models.ModeDuel, rolls: []int{2, 35}, targetGDR: 2, wantKind: KindHit, wantDamage: 17},
		{name: "guard with modifier", mode: models.ModeDuel, rolls: []int{2, 35}, targetGDR: 3, modifier: 1.5, wantKind: KindHit, wantDamage: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := newScriptedRoller(t, tt.rolls...)
			r := NewCombatResolver(roller, tt.modifier)
			a, b := fighters()
			a.HealCharges = 2
			b.GuardDamageRating = tt.targetGDR

			out := r.ResolveHit(tt.mode, a, b, tt.forced)

			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, tt.wantDamage, out.Damage)
			assert.Equal(t, tt.wantCount, out.CountCrit)
			assert.Equal(t, 100-tt.wantDamage, b.HP)
			assert.Equal(t, tt.targetGDR+1, b.GuardDamageRating)
			assert.Equal(t, models.MaxHealCharges, a.HealCharges, "hitting restores heal charges")
			assert.Zero(t, roller.Remaining(), "every scripted roll is consumed")
		})
	}
}

func TestResolveHit_RollOrder(t *testing.T) {
	roller := newScriptedRoller(t, 2, 2, 18)
	r := NewCombatResolver(roller, 1)
	a, b := fighters()

	r.ResolveHit(models.ModeOpen, a, b, false)

	assert.Equal(t, [][2]int{{1, 75}, {1, 12}, {18, 35}}, roller.Calls())
}

func TestResolveHit_Instakill(t *testing.T) {
	roller := newScriptedRoller(t, 1)
	r := NewCombatResolver(roller, 1)
	a, b := fighters()
	a.HealCharges = 1

	out := r.ResolveHit(models.ModeOpen, a, b, false)

	assert.Equal(t, KindInstakill, out.Kind)
	assert.True(t, out.TargetDied)
	assert.Equal(t, models.DeadHP, b.HP)
	assert.Equal(t, 1, a.HealCharges, "instakills do not touch the attacker")
	assert.Len(t, roller.Calls(), 1)
}

func TestResolveHit_NoInstakillWhenRanked(t *testing.T) {
	for _, mode := range []models.Mode{models.ModeDuel, models.ModeDeathmatch} {
		t.Run(string(mode), func(t *testing.T) {
			roller := newScriptedRoller(t, 2, 18)
			r := NewCombatResolver(roller, 1)
			a, b := fighters()

			out := r.ResolveHit(mode, a, b, false)

			assert.Equal(t, KindHit, out.Kind)
			assert.Equal(t, [][2]int{{1, 12}, {18, 35}}, roller.Calls())
		})
	}
}

func TestResolveHit_KeepsNegativeHP(t *testing.T) {
	roller := newScriptedRoller(t, 1, 35)
	r := NewCombatResolver(roller, 1)
	a, b := fighters()
	b.HP = 10

	out := r.ResolveHit(models.ModeDuel, a, b, false)

	assert.True(t, out.TargetDied)
	assert.Equal(t, -60, b.HP)
	assert.Equal(t, -60, out.TargetHPAfter)
}

func TestResolveHeal(t *testing.T) {
	tests := []struct {
		name      string
		charges   int
		hp        int
		wantUpper int
	}{
		{name: "full charges", charges: 5, hp: 40, wantUpper: 44},
		{name: "one spent", charges: 4, hp: 40, wantUpper: 40},
		{name: "last charge", charges: 1, hp: 40, wantUpper: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := newScriptedRoller(t)
			r := NewCombatResolver(roller, 1)
			c := models.NewCombatant("alice", "alice")
			c.HP = tt.hp
			c.HealCharges = tt.charges

			out, err := r.ResolveHeal(c, false)
			require.NoError(t, err)

			assert.Equal(t, [][2]int{{22, tt.wantUpper}}, roller.Calls())
			assert.Equal(t, KindHeal, out.Kind)
			assert.Equal(t, tt.hp+tt.wantUpper, c.HP)
			assert.Equal(t, tt.wantUpper, out.Healed)
			assert.Equal(t, tt.charges-1, c.HealCharges)
		})
	}
}

func TestResolveHeal_ClampsAtMax(t *testing.T) {
	r := NewCombatResolver(newScriptedRoller(t, 40), 1)
	c := models.NewCombatant("alice", "alice")
	c.HP = 90

	out, err := r.ResolveHeal(c, false)
	require.NoError(t, err)

	assert.Equal(t, models.MaxHP, c.HP)
	assert.Equal(t, 40, out.Rolled)
	assert.Equal(t, 10, out.Healed)
}

func TestResolveHeal_NoCharges(t *testing.T) {
	roller := newScriptedRoller(t)
	r := NewCombatResolver(roller, 1)
	c := models.NewCombatant("alice", "alice")
	c.HP = 50
	c.HealCharges = 0

	_, err := r.ResolveHeal(c, false)

	assert.ErrorIs(t, err, ErrNoHealCharges)
	assert.Equal(t, 50, c.HP)
	assert.Empty(t, roller.Calls())
}

func TestResolveHeal_Critical(t *testing.T) {
	roller := newScriptedRoller(t, 50)
	r := NewCombatResolver(roller, 1)
	c := models.NewCombatant("alice", "alice")
	c.HP = 20
	c.HealCharges = 0

	out, err := r.ResolveHeal(c, true)
	require.NoError(t, err)

	assert.Equal(t, KindCriticalHeal, out.Kind)
	assert.Equal(t, [][2]int{{44, 88}}, roller.Calls())
	assert.Equal(t, 70, c.HP)
	assert.Equal(t, 0, c.HealCharges, "forced heals keep charges")
}

func TestResolvePraise(t *testing.T) {
	t.Run("heal target", func(t *testing.T) {
		r := NewCombatResolver(newScriptedRoller(t, PraiseHeal, 60), 1)
		a, b := fighters()
		b.HP = 30

		out, err := r.ResolvePraise(models.ModeOpen, a, b, false)
		require.NoError(t, err)

		assert.Equal(t, KindCriticalHeal, out.Kind)
		assert.Equal(t, PraiseHeal, out.PraiseRoll)
		assert.Equal(t, "alice", out.SourceID)
		assert.Equal(t, "bob", out.TargetID)
		assert.Equal(t, 90, b.HP)
		assert.True(t, a.HasPraised)
	})

	t.Run("smite target", func(t *testing.T) {
		r := NewCombatResolver(newScriptedRoller(t, PraiseSmite, 2, 20), 1)
		a, b := fighters()

		out, err := r.ResolvePraise(models.ModeOpen, a, b, false)
		require.NoError(t, err)

		assert.Equal(t, KindCriticalHit, out.Kind)
		assert.False(t, out.CountCrit)
		assert.Equal(t, 40, out.Damage)
		assert.Equal(t, 60, b.HP)
	})

	t.Run("ignored", func(t *testing.T) {
		r := NewCombatResolver(newScriptedRoller(t, PraiseIgnore), 1)
		a, b := fighters()

		out, err := r.ResolvePraise(models.ModeDuel, a, b, false)
		require.NoError(t, err)

		assert.Equal(t, KindNoEffect, out.Kind)
		assert.Equal(t, 100, b.HP)
		assert.True(t, a.HasPraised)
	})

	t.Run("defaults to self", func(t *testing.T) {
		r := NewCombatResolver(newScriptedRoller(t, PraiseHeal, 44), 1)
		a, _ := fighters()
		a.HP = 10

		out, err := r.ResolvePraise(models.ModeOpen, a, nil, false)
		require.NoError(t, err)

		assert.Equal(t, "alice", out.TargetID)
		assert.Equal(t, 54, a.HP)
		assert.Equal(t, 10, out.SourceHPBefore)
	})

	t.Run("opponent override smites the praiser", func(t *testing.T) {
		roller := newScriptedRoller(t, 20)
		r := NewCombatResolver(roller, 1)
		a, b := fighters()

		out, err := r.ResolvePraise(models.ModeDuel, a, b, true)
		require.NoError(t, err)

		assert.True(t, out.Overridden)
		assert.Equal(t, PraiseSmite, out.PraiseRoll)
		assert.Equal(t, "alice", out.TargetID)
		assert.Equal(t, 60, a.HP)
		assert.Equal(t, 100, b.HP)
		assert.Equal(t, [][2]int{{18, 35}}, roller.Calls(), "no praise roll is drawn")
	})

	t.Run("disabled in deathmatch", func(t *testing.T) {
		r := NewCombatResolver(newScriptedRoller(t), 1)
		a, b := fighters()

		_, err := r.ResolvePraise(models.ModeDeathmatch, a, b, false)

		assert.ErrorIs(t, err, ErrPraiseDisabled)
		assert.False(t, a.HasPraised)
	})

	t.Run("once per match", func(t *testing.T) {
		r := NewCombatResolver(newScriptedRoller(t), 1)
		a, b := fighters()
		a.HasPraised = true

		_, err := r.ResolvePraise(models.ModeOpen, a, b, false)

		assert.ErrorIs(t, err, ErrPraiseUsed)
	})
}

func TestOutcomeKindString(t *testing.T) {
	assert.Equal(t, "critical_hit", KindCriticalHit.String())
	assert.Equal(t, "unknown", OutcomeKind(42).String())
}
