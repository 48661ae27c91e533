package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Roller draws uniformly distributed integers in [min, max], both inclusive.
type Roller interface {
	Roll(min, max int) int
}

// RandRoller is a seeded math/rand source shared by every engine in the process.
type RandRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandRoller(seed int64) *RandRoller {
	return &RandRoller{rng: rand.New(rand.NewSource(seed))}
}

// NewSeededRoller seeds a RandRoller from crypto/rand.
func NewSeededRoller() (*RandRoller, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewRandRoller(int64(binary.LittleEndian.Uint64(b[:]))), nil
}

func (r *RandRoller) Roll(min, max int) int {
	if max <= min {
		return min
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Intn(max-min+1)
}

// Shuffle permutes ids in place (Fisher-Yates).
func Shuffle(r Roller, ids []string) {
	for i := len(ids) - 1; i > 0; i-- {
		j := r.Roll(0, i)
		ids[i], ids[j] = ids[j], ids[i]
	}
}
