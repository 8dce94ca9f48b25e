package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the indexed course materials",
	Long: `Searches the indexed course materials and prints the best-matching
chunks with their scores and citations. The index is built first if it
does not exist yet.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultTopK, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil || indexService == nil {
		return errors.New("search service not configured")
	}

	ctx := cmd.Context()

	if !indexService.Ready() {
		if err := indexService.Build(ctx); err != nil {
			return fmt.Errorf("build index: %w", err)
		}
	}

	results, err := searchService.Search(ctx, query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.ScoredChunk) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.ScoredChunk) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		chunk := results[i].Chunk

		snippet := chunk.Text
		if len(snippet) > 120 {
			snippet = snippet[:120] + "..."
		}

		cmd.Printf("  [%d] %s (%.1f)\n", i+1, chunk.Citation, results[i].Score)
		cmd.Printf("      %s\n", snippet)
		cmd.Println()
	}

	return nil
}
