package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the search index from unlocked course modules",
	Long: `Builds the search index from all currently unlocked course modules.

The unlock state is read fresh on every build, so running this after
the course guide unlocks a module makes the new content searchable.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.Build(cmd.Context()); err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	stats, err := indexService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("read index stats: %w", err)
	}

	cmd.Printf("Indexed %d chunks from %d modules (%d sections, %d code examples)\n",
		stats.TotalChunks, stats.Sources, stats.Sections, stats.CodeBlocks)
	return nil
}
