// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pdiddy/collab-graph/pkg/types"
)

// Source provides author identity, paper, and coauthor lookups against the
// external bibliographic data source.
type Source interface {
	SearchAuthors(ctx context.Context, name string) ([]types.AuthorMatch, error)
	AuthorPapers(ctx context.Context, authorID string, limit int) ([]types.PaperRef, error)
	PaperAuthors(ctx context.Context, paperID string) ([]types.Author, error)
}

// ResolvedSeed pairs an input name with the identity it resolved to.
type ResolvedSeed struct {
	Seed   string
	Author types.Author
}

// Result holds the built graph plus run accounting. Per-item failures never
// abort a build; they are reported here and as warnings.
type Result struct {
	Graph *Graph

	// Resolved lists seeds that mapped to an author identity, in input order.
	Resolved []ResolvedSeed

	// Unresolved lists seed names that produced no usable match, in input order.
	Unresolved []string

	// SkippedAuthors counts resolved seeds whose paper list could not be fetched.
	SkippedAuthors int

	// SkippedPapers counts papers whose author list could not be fetched.
	SkippedPapers int
}

// Builder turns seed names into a collaboration graph.
type Builder struct {
	src Source
	cfg types.BuildConfig
	w   io.Writer
}

// NewBuilder returns a Builder reading from src. Warnings and progress go
// to w.
func NewBuilder(src Source, cfg types.BuildConfig, w io.Writer) *Builder {
	return &Builder{src: src, cfg: cfg, w: w}
}

// Build resolves each seed name, fetches the resolved authors' papers and
// coauthor lists, and folds every observation into one graph. Unresolvable
// seeds and failed fetches are skipped with a warning; Build itself fails
// only on context cancellation.
func (b *Builder) Build(ctx context.Context, names []string) (*Result, error) {
	res := &Result{Graph: New()}

	if err := b.resolveSeeds(ctx, names, res); err != nil {
		return nil, err
	}
	fmt.Fprintf(b.w, "resolved %d / %d seed(s)\n", len(res.Resolved), len(names))

	if err := b.fetchAll(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// resolveSeeds maps each seed name to its top-ranked author match. Ties on
// relevance score keep the first-returned match, so resolution is stable.
func (b *Builder) resolveSeeds(ctx context.Context, names []string, res *Result) error {
	byID := make(map[string]string) // author ID → seed that claimed it

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		matches, err := b.src.SearchAuthors(ctx, name)
		if err != nil {
			fmt.Fprintf(b.w, "warning: search failed for %q: %v\n", name, err)
			res.Unresolved = append(res.Unresolved, name)
			continue
		}

		top, ok := topMatch(matches)
		if !ok {
			fmt.Fprintf(b.w, "warning: no author match for %q\n", name)
			res.Unresolved = append(res.Unresolved, name)
			continue
		}

		if prev, taken := byID[top.ID]; taken {
			fmt.Fprintf(b.w, "warning: %q resolves to the same author as %q (%s); skipping\n",
				name, prev, top.ID)
			continue
		}
		byID[top.ID] = name
		res.Resolved = append(res.Resolved, ResolvedSeed{Seed: name, Author: top.Author})
	}
	return nil
}

// topMatch picks the highest-scoring match; only a strictly greater score
// displaces an earlier candidate.
func topMatch(matches []types.AuthorMatch) (types.AuthorMatch, bool) {
	if len(matches) == 0 {
		return types.AuthorMatch{}, false
	}
	best := matches[0]
	for _, m := range matches[1:] {
		if m.RelevanceScore > best.RelevanceScore {
			best = m
		}
	}
	return best, true
}

// partial is one worker's private accumulation for a single seed. Warnings
// are carried back so the combining loop stays the only writer to b.w.
type partial struct {
	graph          *Graph
	warnings       []string
	skippedAuthors int
	skippedPapers  int
}

// fetchAll fetches papers and coauthors for every resolved seed and merges
// the per-seed partial graphs into res.Graph. With Workers > 1 the fetches
// run on a bounded pool; accumulation stays single-writer because each
// worker fills a private Graph and only the merge loop touches the shared
// one.
func (b *Builder) fetchAll(ctx context.Context, res *Result) error {
	workers := b.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(res.Resolved) {
		workers = len(res.Resolved)
	}
	if len(res.Resolved) == 0 {
		return ctx.Err()
	}

	jobs := make(chan ResolvedSeed)
	parts := make(chan *partial, len(res.Resolved))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rs := range jobs {
				parts <- b.fetchSeed(ctx, rs)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, rs := range res.Resolved {
			select {
			case jobs <- rs:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(parts)
	}()

	for p := range parts {
		for _, msg := range p.warnings {
			fmt.Fprintln(b.w, msg)
		}
		res.SkippedAuthors += p.skippedAuthors
		res.SkippedPapers += p.skippedPapers
		res.Graph.Merge(p.graph)
	}
	return ctx.Err()
}

// fetchSeed builds the partial graph contributed by one resolved seed: the
// seed node, its coauthor nodes, and one collaboration per (coauthor, paper)
// observation. Self-pairs are excluded.
func (b *Builder) fetchSeed(ctx context.Context, rs ResolvedSeed) *partial {
	p := &partial{graph: New()}
	p.graph.AddSeed(rs.Author)

	papers, err := b.src.AuthorPapers(ctx, rs.Author.ID, b.cfg.Fetch.MaxPapersPerAuthor)
	if err != nil {
		p.warnings = append(p.warnings,
			fmt.Sprintf("warning: skipping %q: fetching papers: %v", rs.Seed, err))
		p.skippedAuthors++
		return p
	}

	for _, paper := range papers {
		if err := ctx.Err(); err != nil {
			return p
		}
		if b.cfg.Fetch.MinYear > 0 && paper.Year > 0 && paper.Year < b.cfg.Fetch.MinYear {
			continue
		}

		coauthors, err := b.src.PaperAuthors(ctx, paper.ID)
		if err != nil {
			p.warnings = append(p.warnings,
				fmt.Sprintf("warning: skipping paper %s of %q: %v", paper.ID, rs.Seed, err))
			p.skippedPapers++
			continue
		}

		for _, ca := range coauthors {
			if ca.ID == "" || ca.ID == rs.Author.ID {
				continue
			}
			p.graph.AddCoauthor(ca)
			p.graph.AddCollaboration(rs.Author.ID, ca.ID, paper.ID)
		}
	}
	return p
}
