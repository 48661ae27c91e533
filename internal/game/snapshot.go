package game

import (
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
)

// Snapshot is a read-only copy of a room's state for the API.
type Snapshot struct {
	RoomID        string                    `json:"roomId"`
	State         string                    `json:"state"`
	Mode          models.Mode               `json:"mode,omitempty"`
	Combatants    []models.Combatant        `json:"combatants,omitempty"` // turn order
	CurrentTurn   string                    `json:"currentTurn,omitempty"`
	TurnStartedAt *time.Time                `json:"turnStartedAt,omitempty"`
	Pending       []models.PendingChallenge `json:"pending"`
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		RoomID:  e.opts.RoomID,
		State:   e.scheduler.State().String(),
		Pending: []models.PendingChallenge{},
	}

	if match := e.scheduler.Match(); match != nil {
		snap.Mode = match.Mode
		for _, c := range match.Ordered() {
			snap.Combatants = append(snap.Combatants, *c)
		}
		if holder, ok := e.scheduler.Current(); ok {
			snap.CurrentTurn = holder.ID
		}
		started := e.scheduler.TurnStartedAt()
		snap.TurnStartedAt = &started
	}

	for _, ch := range e.negotiator.Pending() {
		copied := *ch
		copied.Invitees = append([]string(nil), ch.Invitees...)
		copied.Accepted = append([]string(nil), ch.Accepted...)
		snap.Pending = append(snap.Pending, copied)
	}
	return snap
}
