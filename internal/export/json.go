// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes a finished collaboration graph for its
// consumers: the viewer JSON the static page loads, an optional SQLite
// snapshot, and a YAML run report. Everything here is a pure function of
// the graph plus one file write.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdiddy/collab-graph/internal/graph"
	"github.com/pdiddy/collab-graph/pkg/types"
)

// Node is one author in the viewer document.
type Node struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Affiliations []string `json:"affiliations,omitempty"`
	PaperCount   int      `json:"paperCount,omitempty"`
	Degree       int      `json:"degree"`
}

// Link is one weighted collaboration in the viewer document.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// Document is the node/link structure the static viewer consumes.
type Document struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// BuildDocument shapes the graph into the viewer document: links filtered
// by cfg.MinEdgeWeight, node degree computed over the surviving links, and
// isolated nodes dropped when cfg.PruneIsolated is set. Node and link
// order is deterministic. An empty graph is an error; there is nothing to
// render.
func BuildDocument(g *graph.Graph, cfg types.ExportConfig) (*Document, error) {
	if g.IsEmpty() {
		return nil, fmt.Errorf("graph is empty: nothing to render")
	}

	minWeight := cfg.MinEdgeWeight
	if minWeight < 1 {
		minWeight = 1
	}

	degree := make(map[string]int)
	// Empty slices, not nil: the viewer iterates both arrays and a
	// node-only graph must still serialize "links": [].
	links := []Link{}
	for _, e := range g.Edges() {
		if e.Weight < minWeight {
			continue
		}
		links = append(links, Link{Source: e.Source, Target: e.Target, Weight: e.Weight})
		degree[e.Source]++
		degree[e.Target]++
	}

	nodes := []Node{}
	for _, n := range g.Nodes() {
		d := degree[n.ID]
		if cfg.PruneIsolated && d == 0 {
			continue
		}
		nodes = append(nodes, Node{
			ID:           n.ID,
			Name:         n.Name,
			Type:         string(n.Kind),
			Affiliations: n.Affiliations,
			PaperCount:   n.PaperCount,
			Degree:       d,
		})
	}

	return &Document{Nodes: nodes, Links: links}, nil
}

// WriteJSON writes the viewer document to path as indented JSON.
func WriteJSON(g *graph.Graph, cfg types.ExportConfig, path string) error {
	doc, err := BuildDocument(g, cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("writing graph to %s: %w", path, err)
	}
	return f.Close()
}

// ReadJSON loads a previously written viewer document, for inspection
// tooling.
func ReadJSON(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph file %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing graph file %s: %w", path, err)
	}
	return &doc, nil
}
