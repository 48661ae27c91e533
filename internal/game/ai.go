package game

import (
	"github.com/Polsaker/dongerdong/internal/models"
)

const (
	finishThreshold = 25 // enemies below this HP are always hit first
	selfHealBelow   = 44
)

// Decision is what the system opponent does with its turn.
type Decision struct {
	Action models.Action
	Target *models.Combatant
}

// OpponentPolicy is the system opponent's fixed priority policy.
type OpponentPolicy struct {
	roller Roller
}

func NewOpponentPolicy(roller Roller) *OpponentPolicy {
	return &OpponentPolicy{roller: roller}
}

// Decide picks an action for self. It reports false when no living enemy is left.
func (p *OpponentPolicy) Decide(self *models.Combatant, match *models.Match) (Decision, bool) {
	var enemies []*models.Combatant
	for _, c := range match.Living() {
		if !models.SameID(c.ID, self.ID) {
			enemies = append(enemies, c)
		}
	}
	if len(enemies) == 0 {
		return Decision{}, false
	}

	for _, enemy := range enemies {
		if enemy.HP < finishThreshold {
			return Decision{Action: models.ActionHit, Target: enemy}, true
		}
	}

	if self.HP < selfHealBelow && self.HealCharges > 0 {
		return Decision{Action: models.ActionHeal, Target: self}, true
	}

	victim := enemies[p.roller.Roll(0, len(enemies)-1)]
	return Decision{Action: models.ActionHit, Target: victim}, true
}
