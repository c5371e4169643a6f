// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"reflect"
	"testing"

	"github.com/pdiddy/collab-graph/pkg/types"
)

func author(id, name string) types.Author {
	return types.Author{ID: id, Name: name}
}

func TestAddCollaborationAccumulatesDistinctPapers(t *testing.T) {
	g := New()
	g.AddSeed(author("a", "Ada"))
	g.AddCoauthor(author("b", "Bob"))

	g.AddCollaboration("a", "b", "p1")
	g.AddCollaboration("a", "b", "p2")
	// Same paper observed from the other endpoint's fetch: must not inflate.
	g.AddCollaboration("b", "a", "p1")

	if got := g.Weight("a", "b"); got != 2 {
		t.Errorf("Weight(a,b) = %d, want 2", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d, want 1", got)
	}
}

func TestAddCollaborationIgnoresSelfPairsAndBlanks(t *testing.T) {
	g := New()
	g.AddSeed(author("a", "Ada"))

	g.AddCollaboration("a", "a", "p1")
	g.AddCollaboration("a", "", "p1")
	g.AddCollaboration("", "a", "p1")
	g.AddCollaboration("a", "b", "")

	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount = %d, want 0", got)
	}
}

func TestNodeUniquenessAndSeedPromotion(t *testing.T) {
	g := New()

	// Discovered as a coauthor first, with a thin record.
	g.AddCoauthor(author("a", "A. Lovelace"))
	// Later resolved as a seed with richer metadata.
	seed := types.Author{ID: "a", Name: "Ada Lovelace", Affiliations: []string{"Analytical Engine Ltd"}, PaperCount: 12}
	g.AddSeed(seed)
	// Coauthor sightings afterwards must not overwrite the seed record.
	g.AddCoauthor(author("a", "A Lovelace"))

	if got := g.NodeCount(); got != 1 {
		t.Fatalf("NodeCount = %d, want 1", got)
	}
	n := g.Nodes()[0]
	if n.Kind != KindSeed {
		t.Errorf("Kind = %q, want %q", n.Kind, KindSeed)
	}
	if !reflect.DeepEqual(n.Author, seed) {
		t.Errorf("Author = %+v, want %+v", n.Author, seed)
	}
}

func TestNodesAndEdgesDeterministicOrder(t *testing.T) {
	g := New()
	g.AddSeed(author("c", "Carol"))
	g.AddSeed(author("a", "Ada"))
	g.AddCoauthor(author("b", "Bob"))
	g.AddCollaboration("c", "a", "p1")
	g.AddCollaboration("b", "a", "p2")

	nodes := g.Nodes()
	wantIDs := []string{"a", "b", "c"}
	for i, id := range wantIDs {
		if nodes[i].ID != id {
			t.Errorf("nodes[%d].ID = %q, want %q", i, nodes[i].ID, id)
		}
	}

	edges := g.Edges()
	want := []Edge{
		{Source: "a", Target: "b", Weight: 1},
		{Source: "a", Target: "c", Weight: 1},
	}
	if !reflect.DeepEqual(edges, want) {
		t.Errorf("Edges = %+v, want %+v", edges, want)
	}
}

func TestMergeUnionsNodesAndPaperSets(t *testing.T) {
	left := New()
	left.AddSeed(author("a", "Ada"))
	left.AddCoauthor(author("b", "Bob"))
	left.AddCollaboration("a", "b", "p1")
	left.AddCollaboration("a", "b", "p2")

	right := New()
	// Bob is a seed from the right-hand partial: kind must win on merge.
	right.AddSeed(author("b", "Bob"))
	right.AddCoauthor(author("a", "Ada"))
	right.AddCoauthor(author("c", "Carol"))
	right.AddCollaboration("b", "a", "p2") // overlap with left
	right.AddCollaboration("b", "a", "p3")
	right.AddCollaboration("b", "c", "p3")

	left.Merge(right)

	if got := left.NodeCount(); got != 3 {
		t.Errorf("NodeCount = %d, want 3", got)
	}
	if got := left.Weight("a", "b"); got != 3 {
		t.Errorf("Weight(a,b) = %d, want 3 (p1, p2, p3)", got)
	}
	if got := left.Weight("b", "c"); got != 1 {
		t.Errorf("Weight(b,c) = %d, want 1", got)
	}

	for _, n := range left.Nodes() {
		switch n.ID {
		case "a", "b":
			if n.Kind != KindSeed {
				t.Errorf("node %s Kind = %q, want seed", n.ID, n.Kind)
			}
		case "c":
			if n.Kind != KindCoauthor {
				t.Errorf("node c Kind = %q, want coauthor", n.Kind)
			}
		}
	}
}

func TestEmptyGraph(t *testing.T) {
	g := New()
	if !g.IsEmpty() {
		t.Error("new graph should be empty")
	}
	if g.Weight("a", "b") != 0 {
		t.Error("Weight on empty graph should be 0")
	}
	if len(g.Nodes()) != 0 || len(g.Edges()) != 0 {
		t.Error("empty graph should have no nodes or edges")
	}
}
