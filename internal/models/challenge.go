package models

import "time"

// Wildcard in a challenge target list opens a slot any non-initiator may take.
const Wildcard = "*"

// PendingChallenge is a proposed match that has not started yet.
type PendingChallenge struct {
	Initiator string    `json:"initiator"`
	Invitees  []string  `json:"invitees"`
	OpenSlots int       `json:"openSlots"`
	Accepted  []string  `json:"accepted"`
	Mode      Mode      `json:"mode"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewPendingChallenge(initiator string, mode Mode, now time.Time) *PendingChallenge {
	return &PendingChallenge{
		Initiator: initiator,
		Accepted:  []string{initiator},
		Mode:      mode,
		CreatedAt: now,
	}
}

// Outstanding counts named invitees plus open wildcard slots.
func (p *PendingChallenge) Outstanding() int {
	return len(p.Invitees) + p.OpenSlots
}

func (p *PendingChallenge) IsInvited(id string) bool {
	return indexOf(p.Invitees, id) >= 0
}

func (p *PendingChallenge) HasAccepted(id string) bool {
	return indexOf(p.Accepted, id) >= 0
}

// RemoveInvitee drops a named invitee and reports whether it was present.
func (p *PendingChallenge) RemoveInvitee(id string) bool {
	i := indexOf(p.Invitees, id)
	if i < 0 {
		return false
	}
	p.Invitees = append(p.Invitees[:i], p.Invitees[i+1:]...)
	return true
}

func (p *PendingChallenge) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(p.CreatedAt) > ttl
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if SameID(candidate, id) {
			return i
		}
	}
	return -1
}
