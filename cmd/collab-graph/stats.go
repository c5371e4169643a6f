package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/collab-graph/internal/export"
)

var statsCmd = &cobra.Command{
	Use:   "stats [graph.json]",
	Short: "Summarize a previously built graph file",
	Long: `Stats reads a viewer JSON file written by build and prints node and edge
counts plus the most-connected authors. It never touches the network.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Int("top", 10, "number of most-connected authors to list")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	path := defaultOutput
	if len(args) > 0 {
		path = args[0]
	}
	top, _ := cmd.Flags().GetInt("top")

	doc, err := export.ReadJSON(path)
	if err != nil {
		return err
	}

	seedCount := 0
	for _, n := range doc.Nodes {
		if n.Type == "seed" {
			seedCount++
		}
	}

	fmt.Printf("%s: %d nodes (%d seeds), %d edges\n\n", path, len(doc.Nodes), seedCount, len(doc.Links))

	nodes := make([]export.Node, len(doc.Nodes))
	copy(nodes, doc.Nodes)
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Degree != nodes[j].Degree {
			return nodes[i].Degree > nodes[j].Degree
		}
		return nodes[i].ID < nodes[j].ID
	})
	if top > 0 && len(nodes) > top {
		nodes = nodes[:top]
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %-10s  %s\n", "Rank", "Name", "Type", "Degree")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 66))
	for i, n := range nodes {
		fmt.Fprintf(os.Stdout, "%-4d  %-40s  %-10s  %d\n", i+1, truncateName(n.Name, 40), n.Type, n.Degree)
	}
	return nil
}

// truncateName shortens name to at most max characters, counting runes so
// multi-byte author names are never cut mid-sequence.
func truncateName(name string, max int) string {
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	return string(r[:max-3]) + "..."
}
