package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodriados/msa/internal/alphabet"
	"github.com/rodriados/msa/internal/core"
)

func TestLookupKnownTables(t *testing.T) {
	for _, name := range []string{"default", "blosum62", "blosum45", "blosum50", "blosum80", "blosum90", "pam250"} {
		tbl, err := Lookup(name)
		require.NoError(t, err, "table %q", name)
		assert.Equal(t, 4, tbl.GapPenalty())
	}
}

func TestLookupUnknownTable(t *testing.T) {
	_, err := Lookup("blosum99")
	require.Error(t, err)

	var coreErr *core.Error
	require.ErrorAs(t, err, &coreErr)
	assert.Equal(t, core.UnknownTable, coreErr.Code)
}

func TestListOmitsDefaultAlias(t *testing.T) {
	names := List()
	assert.NotContains(t, names, "default")
	assert.Contains(t, names, "blosum62")
	assert.Contains(t, names, "pam250")
}

func TestTableIdentityMaximizesScore(t *testing.T) {
	tbl, err := Lookup("blosum62")
	require.NoError(t, err)

	// Identity maximizes score for a symmetric table: check every
	// residue scores at least as well against itself as against any
	// other residue.
	for r := 0; r < alphabet.Size-1; r++ { // exclude '*'
		self := tbl.At(r, r)
		for c := 0; c < alphabet.Size-1; c++ {
			if c == r {
				continue
			}
			assert.GreaterOrEqual(t, self, tbl.At(r, c), "row %d", r)
		}
	}
}

func TestDeviceCloneMatchesHost(t *testing.T) {
	tbl, err := Lookup("blosum62")
	require.NoError(t, err)

	dev := Clone(tbl)
	for r := 0; r < alphabet.Size; r++ {
		for c := 0; c < alphabet.Size; c++ {
			assert.Equal(t, tbl.At(r, c), dev.At(r, c))
		}
	}
	assert.Equal(t, tbl.GapPenalty(), dev.GapPenalty())
}
