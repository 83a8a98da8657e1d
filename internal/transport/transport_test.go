package transport

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalIdentity(t *testing.T) {
	l := NewLocal()
	assert.Equal(t, 0, l.Rank())
	assert.Equal(t, 1, l.Size())

	v, err := l.Broadcast(42, 0)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	sum, err := l.Allreduce(7, func(a, b any) any { return a.(int) + b.(int) })
	require.NoError(t, err)
	assert.Equal(t, 7, sum)

	g, err := l.Allgather("x")
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, g)

	assert.NoError(t, l.Barrier())
}

func runOnAllRanks(ranks []Transport, fn func(t Transport) error) []error {
	var wg sync.WaitGroup
	errs := make([]error, len(ranks))
	for i, r := range ranks {
		wg.Add(1)
		go func(i int, r Transport) {
			defer wg.Done()
			errs[i] = fn(r)
		}(i, r)
	}
	wg.Wait()
	return errs
}

func TestSimulatedRankAndSize(t *testing.T) {
	ranks := NewSimulated(4)
	require.Len(t, ranks, 4)
	seen := make([]int, 4)
	for i, r := range ranks {
		assert.Equal(t, 4, r.Size())
		seen[i] = r.Rank()
	}
	sort.Ints(seen)
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestSimulatedBroadcast(t *testing.T) {
	ranks := NewSimulated(3)
	got := make([]any, 3)
	var mu sync.Mutex
	errs := runOnAllRanks(ranks, func(tr Transport) error {
		v, err := tr.Broadcast(tr.Rank()*100, 1)
		if err != nil {
			return err
		}
		mu.Lock()
		got[tr.Rank()] = v
		mu.Unlock()
		return nil
	})
	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, []any{100, 100, 100}, got)
}

func TestSimulatedAllreduceSum(t *testing.T) {
	ranks := NewSimulated(5)
	results := make([]any, 5)
	errs := runOnAllRanks(ranks, func(tr Transport) error {
		v, err := tr.Allreduce(tr.Rank()+1, func(a, b any) any { return a.(int) + b.(int) })
		results[tr.Rank()] = v
		return err
	})
	for _, err := range errs {
		require.NoError(t, err)
	}
	for _, v := range results {
		assert.Equal(t, 15, v) // 1+2+3+4+5
	}
}

func TestSimulatedAllgatherOrderedByRank(t *testing.T) {
	ranks := NewSimulated(4)
	results := make([][]any, 4)
	errs := runOnAllRanks(ranks, func(tr Transport) error {
		g, err := tr.Allgather(tr.Rank() * 10)
		results[tr.Rank()] = g
		return err
	})
	for _, err := range errs {
		require.NoError(t, err)
	}
	want := []any{0, 10, 20, 30}
	for _, g := range results {
		assert.Equal(t, want, g)
	}
}

func TestSimulatedBarrierReleasesAllRanks(t *testing.T) {
	ranks := NewSimulated(8)
	errs := runOnAllRanks(ranks, func(tr Transport) error {
		return tr.Barrier()
	})
	for _, err := range errs {
		require.NoError(t, err)
	}
}

func TestSimulatedConsecutiveRoundsDoNotInterfere(t *testing.T) {
	ranks := NewSimulated(3)
	var rounds [2][]any
	errs := runOnAllRanks(ranks, func(tr Transport) error {
		a, err := tr.Allgather(tr.Rank())
		if err != nil {
			return err
		}
		rounds[0] = a
		b, err := tr.Allgather(tr.Rank() * 2)
		if err != nil {
			return err
		}
		rounds[1] = b
		return nil
	})
	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, []any{0, 1, 2}, rounds[0])
	assert.Equal(t, []any{0, 2, 4}, rounds[1])
}
