// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph builds the in-memory coauthor-collaboration graph: one node
// per author identity, one undirected edge per collaborating pair, weighted
// by the number of distinct shared papers observed.
package graph

import (
	"sort"

	"github.com/pdiddy/collab-graph/pkg/types"
)

// NodeKind distinguishes seed researchers from discovered coauthors.
type NodeKind string

const (
	KindSeed     NodeKind = "seed"
	KindCoauthor NodeKind = "coauthor"
)

// Node is one author in the graph.
type Node struct {
	types.Author
	Kind NodeKind
}

// Edge is one undirected collaboration, reported with Source < Target so
// every unordered pair has a single canonical form.
type Edge struct {
	Source string
	Target string
	Weight int
}

// pairKey is the canonical (sorted) form of an unordered author pair.
type pairKey struct {
	a, b string
}

func newPairKey(x, y string) pairKey {
	if x > y {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}

// Graph accumulates nodes and weighted edges during a build. Each edge
// tracks the set of contributing paper IDs, so repeated observations of the
// same (pair, paper) triple never inflate the weight.
//
// Graph is not safe for concurrent mutation; parallel builds accumulate
// into private Graphs and combine them with Merge.
type Graph struct {
	nodes map[string]*Node
	edges map[pairKey]map[string]bool // pair → contributing paper IDs
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[pairKey]map[string]bool),
	}
}

// AddSeed records a resolved seed identity. A node already present as a
// coauthor is promoted to seed and picks up the richer search metadata.
func (g *Graph) AddSeed(a types.Author) {
	if a.ID == "" {
		return
	}
	n, ok := g.nodes[a.ID]
	if !ok {
		g.nodes[a.ID] = &Node{Author: a, Kind: KindSeed}
		return
	}
	n.Kind = KindSeed
	n.Author = a
}

// AddCoauthor records an author discovered on a paper. An existing node is
// left untouched, so seed metadata is never overwritten by the thinner
// coauthor records.
func (g *Graph) AddCoauthor(a types.Author) {
	if a.ID == "" {
		return
	}
	if _, ok := g.nodes[a.ID]; ok {
		return
	}
	g.nodes[a.ID] = &Node{Author: a, Kind: KindCoauthor}
}

// AddCollaboration records that the two authors appear together on the
// given paper. Self-pairs and blank identifiers are ignored. Observing the
// same paper again for the same pair is a no-op.
func (g *Graph) AddCollaboration(aID, bID, paperID string) {
	if aID == "" || bID == "" || paperID == "" || aID == bID {
		return
	}
	key := newPairKey(aID, bID)
	papers, ok := g.edges[key]
	if !ok {
		papers = make(map[string]bool)
		g.edges[key] = papers
	}
	papers[paperID] = true
}

// Merge folds other into g: nodes are unioned (seed kind and metadata win),
// and per-edge paper sets are unioned so weights stay overcount-free.
func (g *Graph) Merge(other *Graph) {
	for _, n := range other.nodes {
		if n.Kind == KindSeed {
			g.AddSeed(n.Author)
		} else {
			g.AddCoauthor(n.Author)
		}
	}
	for key, papers := range other.edges {
		dst, ok := g.edges[key]
		if !ok {
			dst = make(map[string]bool, len(papers))
			g.edges[key] = dst
		}
		for p := range papers {
			dst[p] = true
		}
	}
}

// NodeCount returns the number of distinct authors in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct collaborating pairs.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool { return len(g.nodes) == 0 }

// HasNode reports whether an author identifier is present.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Weight returns the number of distinct shared papers between two authors,
// or zero when no edge exists.
func (g *Graph) Weight(aID, bID string) int {
	return len(g.edges[newPairKey(aID, bID)])
}

// Nodes returns all nodes sorted by identifier.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edges returns all edges with their weights, sorted by (Source, Target).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for key, papers := range g.edges {
		out = append(out, Edge{Source: key.a, Target: key.b, Weight: len(papers)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}
