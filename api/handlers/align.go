package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rodriados/msa/internal/alphabet"
	"github.com/rodriados/msa/internal/seqdb"
	"github.com/rodriados/msa/internal/transport"
	"github.com/rodriados/msa/pkg/msa"
)

// SequenceInput is one record of an AlignRequest, the JSON shape of a
// sequence before it has been encoded.
type SequenceInput struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Bases       string `json:"bases"`
}

// AlignRequest is the body of POST /api/v1/align.
type AlignRequest struct {
	Sequences []SequenceInput `json:"sequences"`
	Table     string          `json:"table"`
	Algorithm string          `json:"algorithm"`
}

// AlignResponse carries the pairwise distance matrix's flattened strict
// lower triangle (in (max,min) addressing) plus the guide tree, so a
// caller never needs this process's internal Matrix type.
type AlignResponse struct {
	N        int        `json:"n"`
	Distance []float64  `json:"distance"`
	Tree     []TreeNode `json:"tree"`
}

// TreeNode is one GuideTree node rendered for the wire.
type TreeNode struct {
	ID          int     `json:"id"`
	Parent      int     `json:"parent"`
	Left        int     `json:"left"`
	Right       int     `json:"right"`
	BranchLeft  float64 `json:"branch_left"`
	BranchRight float64 `json:"branch_right"`
}

// AlignHandler handles POST /api/v1/align: build a Database from the
// request's sequences, then run pkg/msa.Align over it under a single
// local rank.
func AlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Sequences) < 2 {
		writeError(w, http.StatusBadRequest, "at least 2 sequences are required")
		return
	}

	db := seqdb.New()
	for _, s := range req.Sequences {
		desc := s.Description
		if desc == "" {
			desc = s.ID
		}
		db.Add(desc, alphabet.NewSequence([]byte(s.Bases)))
	}
	db.Seal()

	table := req.Table
	if table == "" {
		table = "default"
	}
	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = "default"
	}

	matrix, tree, err := msa.Align(transport.NewLocal(), db, table, algorithm)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	n := matrix.N()
	distance := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			distance = append(distance, matrix.Get(i, j))
		}
	}

	nodes := make([]TreeNode, len(tree.Nodes))
	for i, node := range tree.Nodes {
		nodes[i] = TreeNode{
			ID:          node.ID,
			Parent:      node.Parent,
			Left:        node.Left,
			Right:       node.Right,
			BranchLeft:  node.BranchLeft,
			BranchRight: node.BranchRight,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignResponse{N: n, Distance: distance, Tree: nodes})
}

// TablesHandler handles GET /api/v1/tables.
func TablesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Tables []string `json:"tables"`
	}{Tables: msa.Tables()})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: message})
}
