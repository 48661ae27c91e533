package game

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
)

// EngineFactory builds the engine of a room on first use.
type EngineFactory func(roomID string) *Engine

// Lobby holds one Engine per room. With an allowlist, other rooms are refused.
type Lobby struct {
	mu      sync.Mutex
	engines map[string]*Engine
	allowed map[string]bool
	factory EngineFactory
}

func NewLobby(factory EngineFactory, rooms ...string) *Lobby {
	l := &Lobby{
		engines: make(map[string]*Engine),
		allowed: make(map[string]bool),
		factory: factory,
	}
	for _, room := range rooms {
		if room != "" {
			l.allowed[room] = true
		}
	}
	return l
}

// Engine returns the room's engine, creating it if needed.
func (l *Lobby) Engine(roomID string) (*Engine, error) {
	if roomID == "" {
		return nil, ErrUnknownRoom
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.allowed) > 0 && !l.allowed[roomID] {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoom, roomID)
	}
	e, ok := l.engines[roomID]
	if !ok {
		e = l.factory(roomID)
		l.engines[roomID] = e
	}
	return e, nil
}

// Handle routes cmd to its room's engine.
func (l *Lobby) Handle(ctx context.Context, cmd models.Command) error {
	e, err := l.Engine(cmd.RoomID)
	if err != nil {
		return err
	}
	return e.Handle(ctx, cmd)
}

// Tick runs one watchdog pass over every room.
func (l *Lobby) Tick(now time.Time) {
	for _, e := range l.snapshot() {
		e.Tick(now)
	}
}

// Rooms lists the rooms with an engine, sorted.
func (l *Lobby) Rooms() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	rooms := make([]string, 0, len(l.engines))
	for id := range l.engines {
		rooms = append(rooms, id)
	}
	sort.Strings(rooms)
	return rooms
}

func (l *Lobby) snapshot() []*Engine {
	l.mu.Lock()
	defer l.mu.Unlock()

	engines := make([]*Engine, 0, len(l.engines))
	for _, e := range l.engines {
		engines = append(engines, e)
	}
	return engines
}
