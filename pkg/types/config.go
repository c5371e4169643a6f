// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "collab-graph/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for talking to the bibliographic source.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxPapersPerAuthor bounds the paper list fetched per resolved author
	// (default 60), to respect API cost and latency.
	MaxPapersPerAuthor int `json:"max_papers_per_author" yaml:"max_papers_per_author"`

	// MinYear drops papers published before this year. Zero disables the filter.
	MinYear int `json:"min_year" yaml:"min_year"`

	// MaxRetries is the number of retry attempts for transient request
	// failures (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// RequestDelay is the pause between consecutive API requests (default
	// 800ms), a politeness delay for the public endpoint.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// APIKey is an optional Semantic Scholar API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// BuildConfig holds settings for the graph build stage.
type BuildConfig struct {
	Fetch FetchConfig `json:"fetch" yaml:"fetch"`

	// Workers is the number of concurrent author fetches. 1 (the default)
	// runs the build sequentially.
	Workers int `json:"workers" yaml:"workers"`
}

// ExportConfig holds settings for the graph serializer.
type ExportConfig struct {
	// MinEdgeWeight drops edges whose weight is below the threshold
	// (default 1, which keeps every edge).
	MinEdgeWeight int `json:"min_edge_weight" yaml:"min_edge_weight"`

	// PruneIsolated drops nodes left without any edge after weight
	// filtering.
	PruneIsolated bool `json:"prune_isolated" yaml:"prune_isolated"`
}
