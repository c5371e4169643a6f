package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/collab-graph/internal/export"
	"github.com/pdiddy/collab-graph/internal/graph"
	"github.com/pdiddy/collab-graph/internal/s2"
	"github.com/pdiddy/collab-graph/internal/seeds"
	"github.com/pdiddy/collab-graph/pkg/types"
)

const (
	defaultOutput    = "web/graph.json"
	defaultMaxPapers = 60
	defaultTimeout   = 30 * time.Second
	defaultDelay     = 800 * time.Millisecond
	defaultUserAgent = "collab-graph/0.1"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the collaboration graph and write it for the viewer",
	Long: `Build resolves each researcher name to a Semantic Scholar author, fetches
that author's papers (bounded per author) and each paper's coauthor list,
and accumulates one weighted edge per collaborating pair. Edge weight is
the number of distinct shared papers observed.

Unresolvable names and failed fetches are skipped with a warning; the run
completes with partial data. A missing input file or an empty result graph
aborts the run.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("input", seeds.DefaultFile, "researcher list, one name per line")
	buildCmd.Flags().String("output", defaultOutput, "output path for the viewer JSON")
	buildCmd.Flags().Int("max-papers", defaultMaxPapers, "maximum papers fetched per author")
	buildCmd.Flags().Int("min-year", 0, "ignore papers published before this year (0 = no filter)")
	buildCmd.Flags().Int("min-edge-weight", 1, "drop edges with weight below this threshold")
	buildCmd.Flags().Bool("prune-isolated", false, "drop nodes left without edges after filtering")
	buildCmd.Flags().Int("workers", 1, "concurrent author fetches (1 = sequential)")
	buildCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	buildCmd.Flags().Duration("delay", defaultDelay, "pause between consecutive API requests")
	buildCmd.Flags().Int("retries", 0, "retry attempts for transient request failures (0 = default)")
	buildCmd.Flags().String("api-key", "", "Semantic Scholar API key (default: .secrets/semantic-scholar-api-key)")
	buildCmd.Flags().String("report", "", "also write a YAML run report to this path")
	buildCmd.Flags().String("db", "", "also write a SQLite snapshot to this path")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	input := stringSetting(cmd, "input", "build.input")
	output := stringSetting(cmd, "output", "build.output")

	names, err := seeds.Load(input)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no researcher names in %s", input)
	}
	fmt.Fprintf(os.Stderr, "Loaded %d researcher(s) from %s\n", len(names), input)

	fetchCfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   durationSetting(cmd, "timeout", "fetch.timeout"),
			UserAgent: defaultUserAgent,
		},
		MaxPapersPerAuthor: intSetting(cmd, "max-papers", "fetch.max_papers_per_author"),
		MinYear:            intSetting(cmd, "min-year", "fetch.min_year"),
		MaxRetries:         intSetting(cmd, "retries", "fetch.max_retries"),
		RequestDelay:       durationSetting(cmd, "delay", "fetch.request_delay"),
	}
	apiKey, _ := cmd.Flags().GetString("api-key")
	fetchCfg.APIKey = secretDefault("semantic-scholar-api-key", apiKey)

	buildCfg := types.BuildConfig{
		Fetch:   fetchCfg,
		Workers: intSetting(cmd, "workers", "build.workers"),
	}

	builder := graph.NewBuilder(s2.New(fetchCfg), buildCfg, os.Stderr)
	res, err := builder.Build(cmd.Context(), names)
	if err != nil {
		return err
	}

	if res.Graph.IsEmpty() {
		return fmt.Errorf("result graph is empty: no seed resolved to an author")
	}

	exportCfg := types.ExportConfig{
		MinEdgeWeight: intSetting(cmd, "min-edge-weight", "export.min_edge_weight"),
		PruneIsolated: boolSetting(cmd, "prune-isolated", "export.prune_isolated"),
	}

	if err := export.WriteJSON(res.Graph, exportCfg, output); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d nodes, %d edges)\n", output, res.Graph.NodeCount(), res.Graph.EdgeCount())

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		if err := export.WriteSQLite(cmd.Context(), res.Graph, exportCfg, dbPath); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", dbPath)
	}

	if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
		if err := export.WriteReport(reportPath, buildReport(len(names), res)); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", reportPath)
	}

	if len(res.Unresolved) > 0 {
		fmt.Fprintf(os.Stderr, "%d seed(s) unresolved: %v\n", len(res.Unresolved), res.Unresolved)
	}
	return nil
}

// buildReport shapes a build result into the YAML run report.
func buildReport(seedCount int, res *graph.Result) export.RunReport {
	r := export.RunReport{
		GeneratedAt:    time.Now().UTC(),
		Seeds:          seedCount,
		Unresolved:     res.Unresolved,
		SkippedAuthors: res.SkippedAuthors,
		SkippedPapers:  res.SkippedPapers,
		Nodes:          res.Graph.NodeCount(),
		Edges:          res.Graph.EdgeCount(),
	}
	for _, rs := range res.Resolved {
		r.Resolved = append(r.Resolved, export.SeedResolution{
			Seed:     rs.Seed,
			AuthorID: rs.Author.ID,
			Name:     rs.Author.Name,
		})
	}
	return r
}

// Flag helpers: an explicitly set flag wins, then the config file, then the
// flag's declared default.

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func boolSetting(cmd *cobra.Command, flag, key string) bool {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetBool(key)
	}
	v, _ := cmd.Flags().GetBool(flag)
	return v
}

func durationSetting(cmd *cobra.Command, flag, key string) time.Duration {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	v, _ := cmd.Flags().GetDuration(flag)
	return v
}
