package room

import (
	"errors"
	"sort"
	"sync"

	"github.com/Polsaker/dongerdong/internal/models"
)

var ErrNotMember = errors.New("not a room member")

// Member is one joined account.
type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Roster tracks the joined members of one room, fed by membership events.
type Roster struct {
	mu      sync.RWMutex
	members map[string]Member // keyed by NormalizeID(ID)
}

func NewRoster() *Roster {
	return &Roster{members: make(map[string]Member)}
}

// Join adds or renames a member. An empty display name falls back to the localpart.
func (r *Roster) Join(id, displayName string) {
	if displayName == "" {
		displayName = models.Localpart(id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[models.NormalizeID(id)] = Member{ID: id, DisplayName: displayName}
}

func (r *Roster) Leave(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.members, models.NormalizeID(id))
}

// ResolveIdentity matches token case-insensitively against account ids,
// then localparts, then display names.
func (r *Roster) ResolveIdentity(token string) (string, error) {
	key := models.NormalizeID(token)
	if key == "" {
		return "", ErrNotMember
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if m, ok := r.members[key]; ok {
		return m.ID, nil
	}
	for _, m := range r.sorted() {
		if models.NormalizeID(models.Localpart(m.ID)) == key {
			return m.ID, nil
		}
	}
	for _, m := range r.sorted() {
		if models.NormalizeID(m.DisplayName) == key {
			return m.ID, nil
		}
	}
	return "", ErrNotMember
}

// DisplayName returns the member's display name, or "" for non-members.
func (r *Roster) DisplayName(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.members[models.NormalizeID(id)].DisplayName
}

func (r *Roster) Members() []Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sorted()
}

// sorted keeps lookups deterministic when two members share a name.
func (r *Roster) sorted() []Member {
	out := make([]Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Directory hands out one Roster per room.
type Directory struct {
	mu      sync.Mutex
	rosters map[string]*Roster
	always  []Member
}

// NewDirectory seeds every roster with the always members (the bot itself).
func NewDirectory(always ...Member) *Directory {
	return &Directory{rosters: make(map[string]*Roster), always: always}
}

func (d *Directory) Roster(roomID string) *Roster {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.rosters[roomID]
	if !ok {
		r = NewRoster()
		for _, m := range d.always {
			r.Join(m.ID, m.DisplayName)
		}
		d.rosters[roomID] = r
	}
	return r
}
