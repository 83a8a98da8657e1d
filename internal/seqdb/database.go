// Package seqdb implements the addressable sequence database: an
// ordered, append-only collection of encoded protein sequences with a
// unique dense index and an optional description.
package seqdb

import (
	"fmt"

	"github.com/rodriados/msa/internal/alphabet"
)

// Entry is one record in a Database: a dense, stable index, an optional
// human description, and the packed encoded sequence.
type Entry struct {
	Index       int
	Description string
	Sequence    alphabet.Sequence
}

// Database is an ordered collection of Entry values. Indices are dense,
// insertion-ordered, and stable for the run; a Database is append-only
// once handed to downstream modules.
type Database struct {
	entries []Entry
	sealed  bool
}

// New returns an empty, open Database.
func New() *Database {
	return &Database{}
}

// Add appends a new entry, assigning it the next dense index. It panics
// if the database has been sealed — callers that need dynamic growth
// must finish adding before handing the database to a pipeline stage.
func (d *Database) Add(description string, seq alphabet.Sequence) int {
	if d.sealed {
		panic("seqdb: cannot Add to a sealed Database")
	}
	idx := len(d.entries)
	d.entries = append(d.entries, Entry{Index: idx, Description: description, Sequence: seq})
	return idx
}

// Seal closes the database to further Adds. Callers seal a database
// before handing it to the pipeline; no pipeline stage calls Seal.
func (d *Database) Seal() {
	d.sealed = true
}

// Len returns the number of entries.
func (d *Database) Len() int {
	return len(d.entries)
}

// At returns the entry at a dense index in [0, Len()).
func (d *Database) At(i int) Entry {
	return d.entries[i]
}

// Sequence returns the encoded sequence at index i, the access pattern
// the pairwise engine uses on its hot path.
func (d *Database) Sequence(i int) *alphabet.Sequence {
	return &d.entries[i].Sequence
}

// String renders a short human summary.
func (d *Database) String() string {
	return fmt.Sprintf("Database { entries: %d }", d.Len())
}
