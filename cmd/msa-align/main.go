// Command msa-align provides a CLI for multiple sequence alignment over
// a FASTA file of protein sequences.
//
// Usage:
//
//	msa-align [options]
//
// Options:
//
//	-file       FASTA file to align (required)
//	-table      Scoring table name (default: "default")
//	-algorithm  Pairwise algorithm name (default: "default")
//	-world      Number of simulated ranks (default: 1)
//	-list       List available tables and algorithms, then exit
//	-stats      Print sequence-length summary statistics before aligning
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/rodriados/msa/internal/core"
	"github.com/rodriados/msa/internal/ingest"
	"github.com/rodriados/msa/internal/seqdb"
	"github.com/rodriados/msa/internal/transport"
	"github.com/rodriados/msa/pkg/msa"
)

// exitCode maps err onto the process exit code its Code documents,
// falling back to 1 (generic failure) for errors with no Code.
func exitCode(err error) int {
	if ce, ok := err.(*core.Error); ok {
		return ce.ExitCode()
	}
	return 1
}

func main() {
	file := flag.String("file", "", "FASTA file to align")
	table := flag.String("table", "default", "Scoring table name")
	algorithm := flag.String("algorithm", "default", "Pairwise algorithm name")
	world := flag.Int("world", 1, "Number of simulated ranks")
	list := flag.Bool("list", false, "List available tables and algorithms")
	stats := flag.Bool("stats", false, "Print sequence-length summary statistics before aligning")
	flag.Parse()

	if *list {
		fmt.Println("Tables:", msa.Tables())
		fmt.Println("Algorithms:", msa.Algorithms())
		return
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		flag.Usage()
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(exitCode(err))
	}
	defer f.Close()

	db, err := ingest.ParseFASTA(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing FASTA: %v\n", err)
		os.Exit(exitCode(err))
	}

	if *stats {
		summary, err := seqdb.Summarize(db)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error summarizing database: %v\n", err)
			os.Exit(exitCode(err))
		}
		fmt.Println(summary)
	}

	if *world <= 1 {
		matrix, tree, err := msa.Align(transport.NewLocal(), db, *table, *algorithm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error aligning sequences: %v\n", err)
			os.Exit(exitCode(err))
		}
		report(matrix, tree)
		return
	}

	runSimulated(db, *table, *algorithm, *world)
}

func runSimulated(db *msa.Database, table, algorithm string, world int) {
	ranks := transport.NewSimulated(world)
	var wg sync.WaitGroup
	results := make([]*msa.GuideTree, world)
	matrices := make([]*msa.Matrix, world)
	errs := make([]error, world)

	wg.Add(world)
	for i, tr := range ranks {
		go func(i int, tr transport.Transport) {
			defer wg.Done()
			matrices[i], results[i], errs[i] = msa.Align(tr, db, table, algorithm)
		}(i, tr)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error aligning sequences on rank %d: %v\n", i, err)
			os.Exit(exitCode(err))
		}
	}

	report(matrices[0], results[0])
}

func report(matrix *msa.Matrix, tree *msa.GuideTree) {
	n := matrix.N()
	fmt.Printf("Aligned %d sequences\n", n)
	fmt.Println("Distance matrix:")
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			fmt.Printf("  d(%d,%d) = %.2f\n", i, j, matrix.Get(i, j))
		}
	}
	fmt.Printf("Guide tree: %d nodes, root %d\n", len(tree.Nodes), tree.Root)
	for _, node := range tree.Nodes {
		if node.IsLeaf() {
			continue
		}
		fmt.Printf("  node %d = (%d, %d) branches (%.3f, %.3f)\n",
			node.ID, node.Left, node.Right, node.BranchLeft, node.BranchRight)
	}
}
