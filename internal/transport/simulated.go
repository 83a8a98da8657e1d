package transport

import (
	"fmt"

	"github.com/rodriados/msa/internal/core"
)

// Simulated multiplexes a fixed world of ranks over goroutines and
// channels within a single process, exercising the same collective
// semantics a real cluster transport would provide without needing an
// actual MPI binding: each collective call is one rendezvous round
// where every simulated rank contributes exactly once before any of
// them proceeds.
//
// NewSimulated returns one Transport per rank; callers are expected to
// run each returned Transport's owning goroutine through the identical
// sequence of collective calls (single-program-multiple-data style).
// Calls made out of order across ranks are not detected: a round waits
// until every rank has made some collective call, so ranks that make
// different numbers of calls block forever, and ranks that make
// different kinds of calls share one round's contributions.
type Simulated struct {
	ctrl *controller
	rank int
}

// NewSimulated returns `world` Transport values, one per simulated rank.
func NewSimulated(world int) []Transport {
	ctrl := &controller{world: world, mu: make(chanMutex, 1)}
	out := make([]Transport, world)
	for r := 0; r < world; r++ {
		out[r] = &Simulated{ctrl: ctrl, rank: r}
	}
	return out
}

func (s *Simulated) Rank() int { return s.rank }
func (s *Simulated) Size() int { return s.ctrl.world }

func (s *Simulated) Broadcast(value any, root int) (any, error) {
	contributions, err := s.ctrl.rendezvous(s.rank, rootOnly(s.rank, root, value))
	if err != nil {
		return nil, err
	}
	return contributions[root], nil
}

func rootOnly(rank, root int, value any) any {
	if rank == root {
		return value
	}
	return nil
}

func (s *Simulated) Allreduce(value any, reducer Reducer) (any, error) {
	contributions, err := s.ctrl.rendezvous(s.rank, value)
	if err != nil {
		return nil, err
	}
	acc := contributions[0]
	for i := 1; i < len(contributions); i++ {
		acc = reducer(acc, contributions[i])
	}
	return acc, nil
}

func (s *Simulated) Allgather(value any) ([]any, error) {
	return s.ctrl.rendezvous(s.rank, value)
}

func (s *Simulated) Barrier() error {
	_, err := s.ctrl.rendezvous(s.rank, nil)
	return err
}

// controller coordinates the simulated ranks' rendezvous rounds. Each
// distinct collective call allocates a fresh roundState (see
// controller.rendezvous), so rounds never share mutable state and a
// rank racing ahead into the next collective cannot corrupt a round
// that slower ranks are still draining.
type controller struct {
	world int
	mu    chanMutex
	cur   *roundState
}

type roundState struct {
	contributions []any
	count         int
	done          chan struct{}
}

// chanMutex is a channel-backed mutex so this package needs no import
// beyond the standard library's channel primitives for its one shared
// critical section. Callers must construct it with make(chanMutex, 1)
// before any goroutine can reach lock/unlock.
type chanMutex chan struct{}

func (m *chanMutex) lock() {
	*m <- struct{}{}
}

func (m *chanMutex) unlock() {
	<-*m
}

func (c *controller) rendezvous(rank int, value any) ([]any, error) {
	if rank < 0 || rank >= c.world {
		return nil, core.New(core.TransportError, fmt.Sprintf("rank %d out of range [0,%d)", rank, c.world))
	}

	c.mu.lock()
	if c.cur == nil {
		c.cur = &roundState{
			contributions: make([]any, c.world),
			done:          make(chan struct{}),
		}
	}
	r := c.cur
	r.contributions[rank] = value
	r.count++

	if r.count == c.world {
		c.cur = nil
		c.mu.unlock()
		close(r.done)
	} else {
		c.mu.unlock()
		<-r.done
	}
	return r.contributions, nil
}
