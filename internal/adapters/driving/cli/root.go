// Package cli implements the command-line interface for the tutor.
// Commands hold no business logic; they call driving ports wired in by
// the composition root via Configure.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driving"
	"github.com/campus-labs/tutor-cli/internal/logger"
)

// version is overridden by the build via Execute.
var version = "dev"

// Injected driving ports. Commands must nil-check before use so a
// partially wired test binary fails loudly instead of panicking.
var (
	indexService  driving.IndexService
	searchService driving.SearchService
	tutorService  driving.TutorService
	configStore   driven.ConfigStore
	promptStore   driven.PromptStore
	unlockPath    string
)

var (
	verboseFlag       bool
	reloadPromptsFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Offline course tutor over your unlocked materials",
	Long: `Tutor answers questions about your course using only the modules
you have unlocked, with source citations for every answer.

The index is built from your unlocked course documents and rebuilt
whenever the course guide unlocks a new module. Answers come from a
local language model and never leave your machine.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
		if reloadPromptsFlag && promptStore != nil {
			promptStore.Reload()
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&reloadPromptsFlag, "reload-prompts", false,
		"re-read prompt files from disk before running the command")
}

// Deps aggregates everything the CLI needs from the composition root.
type Deps struct {
	Index  driving.IndexService
	Search driving.SearchService
	Tutor  driving.TutorService
	Config driven.ConfigStore

	// Prompts backs the --reload-prompts flag. Optional.
	Prompts driven.PromptStore

	// UnlockPath is the unlock-state file observed by `tutor watch`.
	UnlockPath string
}

// Configure injects the driving ports. Call once from main before
// Execute.
func Configure(deps Deps) {
	indexService = deps.Index
	searchService = deps.Search
	tutorService = deps.Tutor
	configStore = deps.Config
	promptStore = deps.Prompts
	unlockPath = deps.UnlockPath
}

// Execute runs the root command. v overrides the reported version when
// non-empty.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
