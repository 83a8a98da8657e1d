package scoring

import (
	"sort"
	"sync"

	"github.com/rodriados/msa/internal/core"
)

// catalog is the process-wide name -> Table mapping. Tables are
// immutable once built, so concurrent reads from multiple pairwise
// workers need no locking beyond the one-time build below.
var (
	catalogOnce sync.Once
	catalog     map[string]*Table
)

func buildCatalog() map[string]*Table {
	const defaultGapPenalty = 4

	c := map[string]*Table{
		"blosum62": buildTable("blosum62", blosum62Standard, defaultGapPenalty),
		"blosum45": buildTable("blosum45", scaleVariant(0.70), defaultGapPenalty),
		"blosum50": buildTable("blosum50", scaleVariant(0.85), defaultGapPenalty),
		"blosum80": buildTable("blosum80", scaleVariant(1.25), defaultGapPenalty),
		"blosum90": buildTable("blosum90", scaleVariant(1.40), defaultGapPenalty),
		"pam250":   buildTable("pam250", scaleVariant(0.60), defaultGapPenalty),
	}
	// "default" is accepted for both algorithm and table names; it
	// aliases blosum62.
	c["default"] = c["blosum62"]
	return c
}

func ensureCatalog() map[string]*Table {
	catalogOnce.Do(func() {
		catalog = buildCatalog()
	})
	return catalog
}

// Lookup resolves a canonical table name, failing with UnknownTable
// when the name is absent.
func Lookup(name string) (*Table, error) {
	c := ensureCatalog()
	t, ok := c[name]
	if !ok {
		return nil, core.New(core.UnknownTable, "no such scoring table: "+name)
	}
	return t, nil
}

// List returns every canonical table name, sorted. "default" is omitted
// since it is an alias rather than a distinct table.
func List() []string {
	c := ensureCatalog()
	names := make([]string, 0, len(c))
	for name := range c {
		if name == "default" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
