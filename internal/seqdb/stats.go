package seqdb

import (
	"fmt"
	"sort"

	"github.com/rodriados/msa/internal/core"
)

// Stats is an aggregate summary over a Database's sequence lengths.
// GC/AT content has no meaning for a protein alphabet, so this keeps
// only the length-distribution statistics (count, bases, min/max/mean/
// median, N50).
type Stats struct {
	Count        int
	TotalSymbols int
	MinLength    int
	MaxLength    int
	MeanLength   float64
	MedianLength int
	N50          int
}

// Summarize computes Stats over every entry in the database. It is a
// diagnostic helper behind msa-align's -stats flag, not used by the
// pairwise or phylogeny core.
func Summarize(db *Database) (*Stats, error) {
	n := db.Len()
	if n == 0 {
		return nil, core.New(core.EmptyDatabase, "cannot summarize an empty database")
	}

	lengths := make([]int, n)
	total := 0
	for i := 0; i < n; i++ {
		l := db.Sequence(i).Len()
		lengths[i] = l
		total += l
	}

	minLen, maxLen := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}

	sorted := append([]int(nil), lengths...)
	sort.Ints(sorted)
	mid := n / 2
	var median int
	if n%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	desc := append([]int(nil), lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(desc)))
	half := total / 2
	running := 0
	n50 := desc[0]
	for _, l := range desc {
		running += l
		if running >= half {
			n50 = l
			break
		}
	}

	return &Stats{
		Count:        n,
		TotalSymbols: total,
		MinLength:    minLen,
		MaxLength:    maxLen,
		MeanLength:   float64(total) / float64(n),
		MedianLength: median,
		N50:          n50,
	}, nil
}

func (s *Stats) String() string {
	return fmt.Sprintf(`Stats {
  count: %d
  total symbols: %d
  length range: %d - %d
  mean length: %.1f
  median length: %d
  N50: %d
}`, s.Count, s.TotalSymbols, s.MinLength, s.MaxLength, s.MeanLength, s.MedianLength, s.N50)
}
