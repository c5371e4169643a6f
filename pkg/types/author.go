// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the collab-graph pipeline:
// author identities returned by the bibliographic source, paper references,
// and per-stage configuration.
package types

// Author is a resolved researcher identity from the bibliographic source.
// IDs are stable and unique per author; Name is the display name as the
// source returns it.
type Author struct {
	// ID is the source's canonical author identifier.
	ID string `json:"id" yaml:"id"`

	// Name is the author's display name.
	Name string `json:"name" yaml:"name"`

	// Affiliations lists institutional affiliations, when the source
	// returns them (seed authors only; coauthor records omit them).
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`

	// PaperCount is the source's total paper count for the author, when
	// known. Zero means unknown.
	PaperCount int `json:"paper_count,omitempty" yaml:"paper_count,omitempty"`
}

// AuthorMatch is a candidate identity returned by an author name search,
// with a relevance score between 0.0 and 1.0.
type AuthorMatch struct {
	Author

	// RelevanceScore ranks the match against the query; higher is better.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`
}

// PaperRef identifies one paper in an author's paper list.
type PaperRef struct {
	// ID is the source's canonical paper identifier.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year, or zero when the source omits it.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`
}
