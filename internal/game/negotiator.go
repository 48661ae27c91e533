package game

import (
	"sort"
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
)

type Resolution int

const (
	ResolutionChallenged Resolution = iota
	ResolutionJoined
	ResolutionMatchReady
	ResolutionFled
	ResolutionChallengeCancelled
	ResolutionCancelled
)

func (r Resolution) String() string {
	switch r {
	case ResolutionChallenged:
		return "challenged"
	case ResolutionJoined:
		return "joined"
	case ResolutionMatchReady:
		return "match_ready"
	case ResolutionFled:
		return "fled"
	case ResolutionChallengeCancelled:
		return "challenge_cancelled"
	case ResolutionCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Negotiation is the result of one accept, reject or cancel.
type Negotiation struct {
	Resolution Resolution
	Challenge  *models.PendingChallenge
	// Participants is set on MatchReady, in acceptance order starting with the initiator.
	Participants []string
}

// ChallengeNegotiator holds the pending challenges of one room, at most
// one per initiator.
type ChallengeNegotiator struct {
	pending map[string]*models.PendingChallenge
	ttl     time.Duration
}

func NewChallengeNegotiator(ttl time.Duration) *ChallengeNegotiator {
	return &ChallengeNegotiator{
		pending: make(map[string]*models.PendingChallenge),
		ttl:     ttl,
	}
}

// Challenge records a new challenge from initiator, replacing any earlier
// one. targets are resolved identities or models.Wildcard.
func (n *ChallengeNegotiator) Challenge(initiator string, targets []string, mode models.Mode, now time.Time) (*models.PendingChallenge, error) {
	if len(targets) == 0 {
		return nil, ErrInvalidChallenge
	}

	ch := models.NewPendingChallenge(initiator, mode, now)
	for _, target := range targets {
		if target == models.Wildcard {
			ch.OpenSlots++
			continue
		}
		if models.SameID(target, initiator) {
			return nil, ErrSelfChallenge
		}
		if ch.IsInvited(target) {
			continue
		}
		ch.Invitees = append(ch.Invitees, target)
	}

	if ch.Outstanding() < 1 {
		return nil, ErrInvalidChallenge
	}
	if mode.Ranked() && ch.Outstanding() != 1 {
		return nil, ErrRankedHeadcount
	}

	n.pending[models.NormalizeID(initiator)] = ch
	return ch, nil
}

// Accept adds responder to the initiator's challenge, consuming their
// invitation or, failing that, an open slot.
func (n *ChallengeNegotiator) Accept(responder, initiator string) (Negotiation, error) {
	key := models.NormalizeID(initiator)
	ch, ok := n.pending[key]
	if !ok {
		return Negotiation{}, ErrNotChallenged
	}
	if models.SameID(responder, ch.Initiator) {
		return Negotiation{}, ErrSelfChallenge
	}
	if ch.HasAccepted(responder) {
		return Negotiation{}, ErrAlreadyJoined
	}

	if !ch.RemoveInvitee(responder) {
		if ch.OpenSlots == 0 {
			return Negotiation{}, ErrNotChallenged
		}
		ch.OpenSlots--
	}
	ch.Accepted = append(ch.Accepted, responder)

	if ch.Outstanding() > 0 {
		return Negotiation{Resolution: ResolutionJoined, Challenge: ch}, nil
	}

	delete(n.pending, key)
	return Negotiation{
		Resolution:   ResolutionMatchReady,
		Challenge:    ch,
		Participants: append([]string(nil), ch.Accepted...),
	}, nil
}

// Reject removes a named invitee. Open slots cannot be rejected.
func (n *ChallengeNegotiator) Reject(responder, initiator string) (Negotiation, error) {
	key := models.NormalizeID(initiator)
	ch, ok := n.pending[key]
	if !ok || !ch.RemoveInvitee(responder) {
		return Negotiation{}, ErrNotChallenged
	}

	if ch.Outstanding() > 0 {
		return Negotiation{Resolution: ResolutionFled, Challenge: ch}, nil
	}

	delete(n.pending, key)
	if len(ch.Accepted) == 1 {
		return Negotiation{Resolution: ResolutionChallengeCancelled, Challenge: ch}, nil
	}
	return Negotiation{
		Resolution:   ResolutionMatchReady,
		Challenge:    ch,
		Participants: append([]string(nil), ch.Accepted...),
	}, nil
}

// Cancel withdraws the initiator's own challenge.
func (n *ChallengeNegotiator) Cancel(initiator string) (Negotiation, error) {
	key := models.NormalizeID(initiator)
	ch, ok := n.pending[key]
	if !ok {
		return Negotiation{}, ErrNoSuchChallenge
	}
	delete(n.pending, key)
	return Negotiation{Resolution: ResolutionCancelled, Challenge: ch}, nil
}

// Expire removes and returns every challenge older than the ttl, oldest first.
func (n *ChallengeNegotiator) Expire(now time.Time) []*models.PendingChallenge {
	var expired []*models.PendingChallenge
	for key, ch := range n.pending {
		if ch.Expired(now, n.ttl) {
			expired = append(expired, ch)
			delete(n.pending, key)
		}
	}
	sortByAge(expired)
	return expired
}

func (n *ChallengeNegotiator) Get(initiator string) (*models.PendingChallenge, bool) {
	ch, ok := n.pending[models.NormalizeID(initiator)]
	return ch, ok
}

// Drop discards a challenge without any outcome.
func (n *ChallengeNegotiator) Drop(initiator string) {
	delete(n.pending, models.NormalizeID(initiator))
}

// Clear discards every pending challenge; used when a match starts.
func (n *ChallengeNegotiator) Clear() {
	n.pending = make(map[string]*models.PendingChallenge)
}

// Pending lists the open challenges, oldest first.
func (n *ChallengeNegotiator) Pending() []*models.PendingChallenge {
	out := make([]*models.PendingChallenge, 0, len(n.pending))
	for _, ch := range n.pending {
		out = append(out, ch)
	}
	sortByAge(out)
	return out
}

func sortByAge(challenges []*models.PendingChallenge) {
	sort.Slice(challenges, func(i, j int) bool {
		if !challenges[i].CreatedAt.Equal(challenges[j].CreatedAt) {
			return challenges[i].CreatedAt.Before(challenges[j].CreatedAt)
		}
		return challenges[i].Initiator < challenges[j].Initiator
	})
}
