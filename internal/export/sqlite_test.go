// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pdiddy/collab-graph/internal/graph"
	"github.com/pdiddy/collab-graph/pkg/types"
)

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.db")

	if err := WriteSQLite(context.Background(), fixtureGraph(), types.ExportConfig{}, path); err != nil {
		t.Fatalf("WriteSQLite: %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	var authors int
	if err := db.QueryRow(`SELECT count(*) FROM authors`).Scan(&authors); err != nil {
		t.Fatalf("counting authors: %v", err)
	}
	if authors != 3 {
		t.Errorf("authors = %d, want 3", authors)
	}

	var collaborations int
	if err := db.QueryRow(`SELECT count(*) FROM collaborations`).Scan(&collaborations); err != nil {
		t.Fatalf("counting collaborations: %v", err)
	}
	if collaborations != 2 {
		t.Errorf("collaborations = %d, want 2", collaborations)
	}

	var weight int
	if err := db.QueryRow(
		`SELECT weight FROM collaborations WHERE source = 'a' AND target = 'b'`,
	).Scan(&weight); err != nil {
		t.Fatalf("querying a-b weight: %v", err)
	}
	if weight != 2 {
		t.Errorf("a-b weight = %d, want 2", weight)
	}

	var kind string
	if err := db.QueryRow(`SELECT kind FROM authors WHERE id = 'c'`).Scan(&kind); err != nil {
		t.Fatalf("querying c kind: %v", err)
	}
	if kind != "coauthor" {
		t.Errorf("c kind = %q, want %q", kind, "coauthor")
	}
}

func TestWriteSQLiteOverwritesExistingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.db")

	for i := 0; i < 2; i++ {
		if err := WriteSQLite(context.Background(), fixtureGraph(), types.ExportConfig{}, path); err != nil {
			t.Fatalf("WriteSQLite run %d: %v", i, err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	var authors int
	if err := db.QueryRow(`SELECT count(*) FROM authors`).Scan(&authors); err != nil {
		t.Fatalf("counting authors: %v", err)
	}
	if authors != 3 {
		t.Errorf("authors after rewrite = %d, want 3", authors)
	}
}

func TestWriteSQLiteEmptyGraph(t *testing.T) {
	err := WriteSQLite(context.Background(), graph.New(), types.ExportConfig{}, filepath.Join(t.TempDir(), "graph.db"))
	if err == nil {
		t.Fatal("expected error for empty graph")
	}
}
