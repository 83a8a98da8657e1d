// Package ingest is the upstream FASTA parser: it maps FASTA letters to
// alphabet codes, folding unknowns to X. It is a thin external
// collaborator, not part of the core: the core only ever sees an
// already-built seqdb.Database.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	bioalphabet "github.com/biogo/biogo/alphabet"

	"github.com/rodriados/msa/internal/alphabet"
	"github.com/rodriados/msa/internal/seqdb"
)

// ParseFASTA reads FASTA-formatted protein records from r, building a
// Database whose entries are already-encoded sequences.
//
// Before folding a residue byte through alphabet.Encode, ParseFASTA
// checks it against biogo/alphabet's canonical Protein alphabet and
// replaces any byte that is neither a valid protein letter nor '*' with
// X. Replaced bytes are not counted or reported to the caller.
func ParseFASTA(r io.Reader) (*seqdb.Database, error) {
	db := seqdb.New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var currentDesc string
	var currentBases strings.Builder
	haveRecord := false

	flush := func() {
		if haveRecord {
			db.Add(currentDesc, alphabet.NewSequence([]byte(currentBases.String())))
			currentBases.Reset()
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			flush()
			currentDesc = line[1:]
			haveRecord = true
			continue
		}

		if !haveRecord {
			return nil, fmt.Errorf("ingest: residue data before any header line")
		}
		for i := 0; i < len(line); i++ {
			b := line[i]
			if !bioalphabet.Protein.IsValid(bioalphabet.Letter(b)) && b != '*' {
				b = 'X'
			}
			currentBases.WriteByte(b)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: reading FASTA: %w", err)
	}

	db.Seal()
	return db, nil
}
