package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceRoundTrip(t *testing.T) {
	tests := []string{"AAAA", "ACGT", "", "MKVLATGC", "ACGT***"}
	for _, in := range tests {
		seq := NewSequence([]byte(in))
		assert.Equal(t, in, string(seq.Decode()), "round trip of %q", in)
	}
}

func TestSequenceLenVsPaddedLen(t *testing.T) {
	seq := NewSequence([]byte("ACGT"))
	require.Equal(t, 4, seq.Len())
	assert.GreaterOrEqual(t, seq.PaddedLen(), seq.Len())
	assert.Equal(t, 0, seq.PaddedLen()%symbolsPerWord)
}

func TestSequenceIndexingPastLengthReturnsPad(t *testing.T) {
	seq := NewSequence([]byte("AAAA"))
	// The symbol at position len(s) is Pad, and indexing beyond is
	// defined to return Pad too.
	assert.True(t, seq.At(seq.Len()).IsPad())
	assert.True(t, seq.At(seq.Len()+100).IsPad())
	assert.True(t, seq.At(-1).IsPad())
}

func TestSequenceUnknownFolding(t *testing.T) {
	seq := NewSequence([]byte("AU-Z"))
	assert.Equal(t, Encode('A'), seq.At(0))
	assert.Equal(t, Unknown, seq.At(1))
	assert.Equal(t, Unknown, seq.At(2))
	assert.Equal(t, Encode('Z'), seq.At(3))
}

func TestSequenceEmpty(t *testing.T) {
	seq := NewSequence(nil)
	assert.Equal(t, 0, seq.Len())
	assert.True(t, seq.At(0).IsPad())
}
