// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// SeedResolution records which identity a seed name resolved to.
type SeedResolution struct {
	Seed     string `yaml:"seed"`
	AuthorID string `yaml:"author_id"`
	Name     string `yaml:"name"`
}

// RunReport summarizes one build for later inspection: what resolved, what
// did not, what was skipped, and the size of the resulting graph.
type RunReport struct {
	GeneratedAt    time.Time        `yaml:"generated_at"`
	Seeds          int              `yaml:"seeds"`
	Resolved       []SeedResolution `yaml:"resolved"`
	Unresolved     []string         `yaml:"unresolved,omitempty"`
	SkippedAuthors int              `yaml:"skipped_authors"`
	SkippedPapers  int              `yaml:"skipped_papers"`
	Nodes          int              `yaml:"nodes"`
	Edges          int              `yaml:"edges"`
}

// WriteReport writes the run report to path as YAML.
func WriteReport(path string, r RunReport) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report %s: %w", path, err)
	}
	return nil
}
