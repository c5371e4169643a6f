// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package s2 is a thin client for the Semantic Scholar Graph API, covering
// the three lookups the graph build needs: author search, an author's
// papers, and a paper's author list.
package s2

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/pdiddy/collab-graph/internal/httputil"
	"github.com/pdiddy/collab-graph/pkg/types"
)

// apiBase is the Semantic Scholar Graph API root. Declared as a var so
// tests can substitute an httptest server.
var apiBase = "https://api.semanticscholar.org/graph/v1"

const (
	authorFields = "name,affiliations,paperCount"
	paperFields  = "title,year"

	// searchLimit bounds the author-search candidate list. Only the
	// top-ranked match is used, but a few candidates keep the choice
	// explicit in logs.
	searchLimit = 5
)

// Client queries the Semantic Scholar Graph API.
type Client struct {
	http *http.Client
	cfg  types.FetchConfig

	mu   sync.Mutex
	next time.Time
}

// New returns a Client configured per cfg. An empty cfg.APIKey means
// anonymous access at the public rate limit.
func New(cfg types.FetchConfig) *Client {
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

// SearchAuthors queries the author search endpoint and returns candidate
// identities with position-based relevance scores (the API returns matches
// in rank order but carries no numeric score).
func (c *Client) SearchAuthors(ctx context.Context, name string) ([]types.AuthorMatch, error) {
	if name == "" {
		return nil, fmt.Errorf("empty author name")
	}

	params := url.Values{
		"query":  {name},
		"limit":  {fmt.Sprintf("%d", searchLimit)},
		"fields": {authorFields},
	}

	var sr searchResponse
	if err := c.get(ctx, apiBase+"/author/search?"+params.Encode(), &sr); err != nil {
		return nil, fmt.Errorf("author search %q: %w", name, err)
	}

	total := len(sr.Data)
	var matches []types.AuthorMatch
	for i, a := range sr.Data {
		if a.AuthorID == "" {
			continue
		}
		m := types.AuthorMatch{
			Author: types.Author{
				ID:           a.AuthorID,
				Name:         a.Name,
				Affiliations: a.Affiliations,
				PaperCount:   a.PaperCount,
			},
		}
		if total > 1 {
			m.RelevanceScore = 1.0 - float64(i)/float64(total-1)*0.9
		} else {
			m.RelevanceScore = 1.0
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// AuthorPapers returns up to limit papers for the author.
func (c *Client) AuthorPapers(ctx context.Context, authorID string, limit int) ([]types.PaperRef, error) {
	if limit <= 0 {
		limit = c.cfg.MaxPapersPerAuthor
	}

	params := url.Values{
		"limit":  {fmt.Sprintf("%d", limit)},
		"fields": {paperFields},
	}

	var pr paperListResponse
	if err := c.get(ctx, apiBase+"/author/"+url.PathEscape(authorID)+"/papers?"+params.Encode(), &pr); err != nil {
		return nil, fmt.Errorf("papers for author %s: %w", authorID, err)
	}

	var papers []types.PaperRef
	for _, p := range pr.Data {
		if p.PaperID == "" {
			continue
		}
		papers = append(papers, types.PaperRef{ID: p.PaperID, Title: p.Title, Year: p.Year})
	}
	return papers, nil
}

// PaperAuthors returns the author list of a paper. Authors the source
// cannot identify (no authorId) are dropped.
func (c *Client) PaperAuthors(ctx context.Context, paperID string) ([]types.Author, error) {
	params := url.Values{
		"fields": {"name"},
	}

	var ar authorListResponse
	if err := c.get(ctx, apiBase+"/paper/"+url.PathEscape(paperID)+"/authors?"+params.Encode(), &ar); err != nil {
		return nil, fmt.Errorf("authors for paper %s: %w", paperID, err)
	}

	var authors []types.Author
	for _, a := range ar.Data {
		if a.AuthorID == "" || a.Name == "" {
			continue
		}
		authors = append(authors, types.Author{ID: a.AuthorID, Name: a.Name})
	}
	return authors, nil
}

// get performs a paced GET against the API and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, reqURL string, out any) error {
	if err := c.throttle(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if c.cfg.APIKey != "" {
		req.Header.Set("x-api-key", c.cfg.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, c.cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// throttle spaces requests RequestDelay apart. Safe for concurrent use so
// parallel build workers share one pacing budget.
func (c *Client) throttle(ctx context.Context) error {
	if c.cfg.RequestDelay <= 0 {
		return nil
	}

	c.mu.Lock()
	now := time.Now()
	if c.next.Before(now) {
		c.next = now
	}
	wait := c.next.Sub(now)
	c.next = c.next.Add(c.cfg.RequestDelay)
	c.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

// Semantic Scholar API JSON structures.
type searchResponse struct {
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Data   []s2Author `json:"data"`
}

type s2Author struct {
	AuthorID     string   `json:"authorId"`
	Name         string   `json:"name"`
	Affiliations []string `json:"affiliations"`
	PaperCount   int      `json:"paperCount"`
}

type paperListResponse struct {
	Data []s2Paper `json:"data"`
}

type s2Paper struct {
	PaperID string `json:"paperId"`
	Title   string `json:"title"`
	Year    int    `json:"year"`
}

type authorListResponse struct {
	Data []s2Author `json:"data"`
}
