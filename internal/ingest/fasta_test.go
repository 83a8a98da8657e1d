package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFASTATwoRecords(t *testing.T) {
	input := ">seq1 first sequence\nMKVLAT\nGCDEF\n>seq2 second\nACDEFGHIK\n"
	db, err := ParseFASTA(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, db.Len())

	assert.Equal(t, "seq1 first sequence", db.At(0).Description)
	assert.Equal(t, "MKVLATGCDEF", string(db.Sequence(0).Decode()))
	assert.Equal(t, "seq2 second", db.At(1).Description)
	assert.Equal(t, "ACDEFGHIK", string(db.Sequence(1).Decode()))
}

func TestParseFASTAFoldsUnknownLetters(t *testing.T) {
	input := ">x\nAC-DE1FG\n"
	db, err := ParseFASTA(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, db.Len())
	assert.Equal(t, "ACXDEXFG", string(db.Sequence(0).Decode()))
}

func TestParseFASTARejectsResiduesBeforeHeader(t *testing.T) {
	_, err := ParseFASTA(strings.NewReader("MKVLAT\n>seq1\nACDE\n"))
	require.Error(t, err)
}

func TestParseFASTAEmptyInput(t *testing.T) {
	db, err := ParseFASTA(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, db.Len())
}
