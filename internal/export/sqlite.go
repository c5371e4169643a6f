// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/collab-graph/internal/graph"
	"github.com/pdiddy/collab-graph/pkg/types"
)

// WriteSQLite writes the same filtered view as the JSON export into a
// SQLite database at path: an authors table and a collaborations table.
// The file is an output artifact; nothing in the pipeline reads it back.
func WriteSQLite(ctx context.Context, g *graph.Graph, cfg types.ExportConfig, path string) error {
	doc, err := BuildDocument(g, cfg)
	if err != nil {
		return err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening database %s: %w", path, err)
	}
	defer db.Close()

	if err := createSchema(ctx, db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	authorStmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO authors (id, name, kind, affiliations, paper_count, degree)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing author insert: %w", err)
	}
	defer authorStmt.Close()

	for _, n := range doc.Nodes {
		affiliationsJSON, _ := json.Marshal(n.Affiliations)
		if _, err := authorStmt.ExecContext(ctx,
			n.ID, n.Name, n.Type, string(affiliationsJSON), n.PaperCount, n.Degree,
		); err != nil {
			return fmt.Errorf("inserting author %s: %w", n.ID, err)
		}
	}

	linkStmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO collaborations (source, target, weight) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing collaboration insert: %w", err)
	}
	defer linkStmt.Close()

	for _, l := range doc.Links {
		if _, err := linkStmt.ExecContext(ctx, l.Source, l.Target, l.Weight); err != nil {
			return fmt.Errorf("inserting collaboration %s-%s: %w", l.Source, l.Target, err)
		}
	}

	return tx.Commit()
}

func createSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS authors (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			affiliations TEXT,
			paper_count INTEGER,
			degree INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS collaborations (
			source TEXT NOT NULL REFERENCES authors(id),
			target TEXT NOT NULL REFERENCES authors(id),
			weight INTEGER NOT NULL,
			PRIMARY KEY (source, target)
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}
