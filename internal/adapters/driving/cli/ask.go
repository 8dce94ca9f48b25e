package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the tutor a single question",
	Long: `Asks the tutor one question and prints the answer with its source
citations. The index is built first if it does not exist yet.

For a multi-turn conversation, use ` + "`tutor chat`" + ` instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if tutorService == nil || indexService == nil {
		return errors.New("tutor service not configured")
	}

	ctx := cmd.Context()

	if !indexService.Ready() {
		if err := indexService.Build(ctx); err != nil {
			return fmt.Errorf("build index: %w", err)
		}
	}

	if err := tutorService.Init(ctx); err != nil {
		return fmt.Errorf("initialise tutor: %w", err)
	}

	answer, err := tutorService.Ask(ctx, question)
	if err != nil {
		return err
	}

	cmd.Println(answer.Text)
	if len(answer.Citations) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, c := range answer.Citations {
			cmd.Printf("  - %s\n", c.Text)
		}
	}

	return nil
}
