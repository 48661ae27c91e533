package game

import (
	"sync"
	"testing"
)

// scriptedRoller returns queued values in order and falls back to max once
// the queue is drained. Values outside [min, max] fail the test.
type scriptedRoller struct {
	t     *testing.T
	mu    sync.Mutex
	queue []int
	calls [][2]int
}

func newScriptedRoller(t *testing.T, values ...int) *scriptedRoller {
	return &scriptedRoller{t: t, queue: values}
}

func (r *scriptedRoller) Push(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, values...)
}

func (r *scriptedRoller) Roll(min, max int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, [2]int{min, max})
	if len(r.queue) == 0 {
		return max
	}
	v := r.queue[0]
	r.queue = r.queue[1:]
	if v < min || v > max {
		r.t.Errorf("scripted roll %d outside [%d, %d]", v, min, max)
	}
	return v
}

func (r *scriptedRoller) Calls() [][2]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][2]int(nil), r.calls...)
}

func (r *scriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}
