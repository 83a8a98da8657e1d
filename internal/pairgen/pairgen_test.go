package pairgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairCanonicalization(t *testing.T) {
	assert.Equal(t, New(3, 5), New(5, 3))
	assert.Equal(t, Pair{Max: 5, Min: 3}, New(3, 5))
}

func TestAllCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10} {
		want := 0
		if n >= 2 {
			want = n * (n - 1) / 2
		}
		assert.Len(t, All(n), want)
	}
}

func TestForRankPartitionsExactlyAll(t *testing.T) {
	n, world := 11, 3
	all := All(n)

	var reassembled []Pair
	seen := make(map[int][]Pair)
	for r := 0; r < world; r++ {
		seen[r] = ForRank(n, r, world)
	}
	// Balanced within +-1 pair.
	min, max := len(seen[0]), len(seen[0])
	for r := 1; r < world; r++ {
		if l := len(seen[r]); l < min {
			min = l
		} else if l > max {
			max = l
		}
	}
	assert.LessOrEqual(t, max-min, 1)

	// Union (interleaved by rank, since assignment is round-robin) must
	// reconstruct All(n) in original order when merged back by position.
	total := 0
	for r := 0; r < world; r++ {
		total += len(seen[r])
	}
	assert.Equal(t, len(all), total)

	cursors := make([]int, world)
	for i := range all {
		r := i % world
		reassembled = append(reassembled, seen[r][cursors[r]])
		cursors[r]++
	}
	assert.Equal(t, all, reassembled)
}

func TestForRankSingleWorldReturnsAll(t *testing.T) {
	assert.Equal(t, All(7), ForRank(7, 0, 1))
}
