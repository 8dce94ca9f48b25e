package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index and tutor statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if indexService == nil || tutorService == nil {
		return errors.New("services not configured")
	}

	ctx := cmd.Context()

	indexStats, err := indexService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("read index stats: %w", err)
	}

	tutorStats, err := tutorService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("read tutor stats: %w", err)
	}

	cmd.Println("Index:")
	cmd.Printf("  Ready:         %v\n", indexStats.Ready)
	cmd.Printf("  Chunks:        %d\n", indexStats.TotalChunks)
	cmd.Printf("  Modules:       %d\n", indexStats.Sources)
	cmd.Printf("  Sections:      %d\n", indexStats.Sections)
	cmd.Printf("  Code examples: %d\n", indexStats.CodeBlocks)
	cmd.Println()
	cmd.Println("Tutor:")
	cmd.Printf("  Ready:         %v\n", tutorStats.Ready)
	cmd.Printf("  Questions:     %d\n", tutorStats.TotalQuestions)
	cmd.Printf("  Avg chunks:    %.1f\n", tutorStats.AvgChunksUsed)
	if tutorStats.LastError != "" {
		cmd.Printf("  Last error:    %s\n", tutorStats.LastError)
	}

	if configStore != nil {
		cmd.Println()
		cmd.Printf("Config: %s\n", configStore.Path())
	}

	return nil
}
