package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyJSON  bool
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recorded conversation history",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output history as JSON")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "clear the conversation history and reset the session")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if tutorService == nil {
		return errors.New("tutor service not configured")
	}

	if historyClear {
		if err := tutorService.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset conversation: %w", err)
		}
		cmd.Println("Conversation history cleared.")
		return nil
	}

	turns, err := tutorService.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(turns, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(turns) == 0 {
		cmd.Println("No conversation history yet.")
		return nil
	}

	for i := range turns {
		cmd.Printf("[%s] Q: %s\n", turns[i].Timestamp.Format("2006-01-02 15:04"), turns[i].Question)
		cmd.Printf("A: %s\n", turns[i].Answer)
		for _, c := range turns[i].Citations {
			cmd.Printf("   - %s\n", c.Text)
		}
		cmd.Println()
	}

	return nil
}
