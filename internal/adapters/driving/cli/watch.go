package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	unlockfile "github.com/campus-labs/tutor-cli/internal/adapters/driven/unlock/file"
	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the unlock state and rebuild the index on change",
	Long: `Builds the index, then watches the unlock-state file and rebuilds
automatically whenever the course guide unlocks or relocks a module.

Runs until interrupted. Searches during a rebuild keep seeing the
previous index until the rebuild completes.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}
	if unlockPath == "" {
		return errors.New("unlock-state path not configured")
	}

	ctx := cmd.Context()

	if err := indexService.Build(ctx); err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	cmd.Printf("Watching %s for unlock changes (Ctrl+C to stop)\n", unlockPath)

	watcher, err := unlockfile.NewWatcher(unlockPath, func(ctx context.Context) {
		// Rebuild failures must not kill the watch loop.
		if err := indexService.Rebuild(ctx); err != nil {
			if errors.Is(err, domain.ErrRebuildInProgress) {
				logger.Debug("Rebuild already running, change will be picked up next time")
				return
			}
			logger.Error("Index rebuild failed: %v", err)
			return
		}
		logger.Info("Index rebuilt after unlock change")
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
