package msa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodriados/msa/internal/alphabet"
	"github.com/rodriados/msa/internal/seqdb"
	"github.com/rodriados/msa/internal/transport"
)

func buildDatabase(seqs ...string) *Database {
	db := seqdb.New()
	for _, s := range seqs {
		db.Add("", alphabet.NewSequence([]byte(s)))
	}
	db.Seal()
	return db
}

func TestAlignRunsFullPipeline(t *testing.T) {
	db := buildDatabase("MKVLAT", "MKVLAS", "ACDEFG", "ACDEFH")
	matrix, tree, err := Align(transport.NewLocal(), db, "blosum62", "sequential")
	require.NoError(t, err)
	assert.Equal(t, db.Len(), matrix.N())
	assert.Len(t, tree.Nodes, 2*db.Len()-1)
}

func TestAlignUnknownTableFails(t *testing.T) {
	db := buildDatabase("MKVLAT", "ACDEFG")
	_, _, err := Align(transport.NewLocal(), db, "blosum99", "sequential")
	require.Error(t, err)
}

func TestTablesAndAlgorithmsCatalogs(t *testing.T) {
	assert.Contains(t, Tables(), "blosum62")
	assert.Contains(t, Algorithms(), "sequential")
	assert.Contains(t, Algorithms(), "needleman")
	assert.Contains(t, Algorithms(), "hybrid")
}
