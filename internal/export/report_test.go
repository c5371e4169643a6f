// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	in := RunReport{
		GeneratedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		Seeds:       3,
		Resolved: []SeedResolution{
			{Seed: "Ada Lovelace", AuthorID: "a", Name: "Ada Lovelace"},
			{Seed: "Alan Turing", AuthorID: "b", Name: "Alan Turing"},
		},
		Unresolved:    []string{"Unknown Name"},
		SkippedPapers: 1,
		Nodes:         5,
		Edges:         4,
	}
	if err := WriteReport(path, in); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	var out RunReport
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("parsing report: %v", err)
	}

	if out.Seeds != 3 || len(out.Resolved) != 2 || len(out.Unresolved) != 1 {
		t.Errorf("round-trip = %+v, want %+v", out, in)
	}
	if out.Resolved[0].AuthorID != "a" {
		t.Errorf("Resolved[0].AuthorID = %q, want %q", out.Resolved[0].AuthorID, "a")
	}
	if out.Nodes != 5 || out.Edges != 4 {
		t.Errorf("counts = %d/%d, want 5/4", out.Nodes, out.Edges)
	}
}

func TestWriteReportUnwritablePath(t *testing.T) {
	err := WriteReport(filepath.Join(t.TempDir(), "missing", "report.yaml"), RunReport{})
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
