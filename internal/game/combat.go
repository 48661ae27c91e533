package game

import (
	"github.com/Polsaker/dongerdong/internal/models"
)

const (
	instakillSides = 75
	critSides      = 12

	minHitDamage = 18
	maxHitDamage = 35

	minHeal           = 22
	maxHealBase       = 44
	healChargePenalty = 4 // upper bound shrinks by this per spent charge

	minCriticalHeal = 44
	maxCriticalHeal = 88

	praiseSides = 3
)

// Praise rolls.
const (
	PraiseHeal   = 1
	PraiseSmite  = 2
	PraiseIgnore = 3
)

type OutcomeKind int

const (
	KindHit OutcomeKind = iota
	KindCriticalHit
	KindInstakill
	KindHeal
	KindCriticalHeal
	KindNoEffect
)

func (k OutcomeKind) String() string {
	switch k {
	case KindHit:
		return "hit"
	case KindCriticalHit:
		return "critical_hit"
	case KindInstakill:
		return "instakill"
	case KindHeal:
		return "heal"
	case KindCriticalHeal:
		return "critical_heal"
	case KindNoEffect:
		return "no_effect"
	}
	return "unknown"
}

// CombatOutcome is everything narration and stats need to know about one action.
type CombatOutcome struct {
	Kind     OutcomeKind
	SourceID string
	TargetID string

	SourceHPBefore int
	SourceHPAfter  int
	TargetHPBefore int
	TargetHPAfter  int

	Damage int // applied to the target
	Rolled int // base damage or heal roll before modifiers and clamping
	Healed int // HP actually gained

	Critical   bool
	CountCrit  bool // false for praise-forced criticals
	Forced     bool
	TargetDied bool

	PraiseRoll int  // 0 unless the outcome came from a praise
	Overridden bool // praise roll forced by the system opponent
}

// CombatResolver applies hit, heal and praise rules to combatants.
// It has no side effects outside the combatants it is handed.
type CombatResolver struct {
	roller        Roller
	guardModifier float64
}

func NewCombatResolver(roller Roller, guardModifier float64) *CombatResolver {
	if guardModifier < 1 {
		guardModifier = 1
	}
	return &CombatResolver{roller: roller, guardModifier: guardModifier}
}

// ResolveHit makes source strike target. Rolls are drawn in a fixed order:
// instakill (Open mode only), critical (skipped when forced), damage.
func (r *CombatResolver) ResolveHit(mode models.Mode, source, target *models.Combatant, forcedCritical bool) CombatOutcome {
	out := CombatOutcome{
		Kind:           KindHit,
		SourceID:       source.ID,
		TargetID:       target.ID,
		SourceHPBefore: source.HP,
		TargetHPBefore: target.HP,
		Forced:         forcedCritical,
	}

	if !mode.Ranked() && r.roller.Roll(1, instakillSides) == 1 {
		target.HP = models.DeadHP
		out.Kind = KindInstakill
		out.Damage = out.TargetHPBefore - target.HP
		out.SourceHPAfter = source.HP
		out.TargetHPAfter = target.HP
		out.TargetDied = true
		return out
	}

	critical := forcedCritical || r.roller.Roll(1, critSides) == 1
	damage := r.roller.Roll(minHitDamage, maxHitDamage)
	out.Rolled = damage

	if critical {
		damage *= 2
		out.Kind = KindCriticalHit
		out.Critical = true
		out.CountCrit = !forcedCritical
	} else if target.GuardDamageRating != 1 {
		damage = int(float64(damage) / (float64(target.GuardDamageRating) * r.guardModifier))
	}

	source.HealCharges = models.MaxHealCharges
	target.HP -= damage
	target.GuardDamageRating++

	out.Damage = damage
	out.SourceHPAfter = source.HP
	out.TargetHPAfter = target.HP
	out.TargetDied = !target.Alive()
	return out
}

// ResolveHeal heals target. A forced (praise) heal is critical and keeps charges.
func (r *CombatResolver) ResolveHeal(target *models.Combatant, forcedCritical bool) (CombatOutcome, error) {
	if !forcedCritical && target.HealCharges <= 0 {
		return CombatOutcome{}, ErrNoHealCharges
	}

	out := CombatOutcome{
		Kind:           KindHeal,
		SourceID:       target.ID,
		TargetID:       target.ID,
		SourceHPBefore: target.HP,
		TargetHPBefore: target.HP,
		Forced:         forcedCritical,
	}

	var amount int
	if forcedCritical {
		amount = r.roller.Roll(minCriticalHeal, maxCriticalHeal)
		out.Kind = KindCriticalHeal
		out.Critical = true
	} else {
		upper := maxHealBase - (models.MaxHealCharges-target.HealCharges)*healChargePenalty
		amount = r.roller.Roll(minHeal, upper)
		target.HealCharges--
	}

	target.HP += amount
	if target.HP > models.MaxHP {
		target.HP = models.MaxHP
	}

	out.Rolled = amount
	out.Healed = target.HP - out.TargetHPBefore
	out.SourceHPAfter = target.HP
	out.TargetHPAfter = target.HP
	return out, nil
}

// ResolvePraise spends actor's praise. With the system opponent in the
// match the roll is always a smite on the praiser.
func (r *CombatResolver) ResolvePraise(mode models.Mode, actor, target *models.Combatant, opponentInMatch bool) (CombatOutcome, error) {
	if !mode.PraiseAllowed() {
		return CombatOutcome{}, ErrPraiseDisabled
	}
	if actor.HasPraised {
		return CombatOutcome{}, ErrPraiseUsed
	}
	if target == nil {
		target = actor
	}

	actor.HasPraised = true

	roll := PraiseSmite
	if opponentInMatch {
		target = actor
	} else {
		roll = r.roller.Roll(1, praiseSides)
	}

	var out CombatOutcome
	switch roll {
	case PraiseHeal:
		// forced heals never fail
		out, _ = r.ResolveHeal(target, true)
		out.SourceID = actor.ID
		out.SourceHPBefore = actor.HP
		out.SourceHPAfter = actor.HP
		if target == actor {
			out.SourceHPBefore = out.TargetHPBefore
		}
	case PraiseSmite:
		out = r.ResolveHit(mode, actor, target, true)
	default:
		out = CombatOutcome{
			Kind:           KindNoEffect,
			SourceID:       actor.ID,
			TargetID:       target.ID,
			SourceHPBefore: actor.HP,
			SourceHPAfter:  actor.HP,
			TargetHPBefore: target.HP,
			TargetHPAfter:  target.HP,
		}
	}

	out.PraiseRoll = roll
	out.Overridden = opponentInMatch
	return out, nil
}
