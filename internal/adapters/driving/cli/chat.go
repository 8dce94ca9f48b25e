package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/campus-labs/tutor-cli/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive tutoring session",
	Long: `Starts an interactive chat session with the tutor.

Answers are grounded in your unlocked course modules and always carry
source citations.

Controls:
  Enter     - Send question
  Ctrl+R    - Reset the conversation
  Esc/Ctrl+C - Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if tutorService == nil || indexService == nil {
		return errors.New("tutor service not configured")
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("chat requires an interactive terminal; use `tutor ask` instead")
	}

	// Panic recovery so a TUI crash still prints a stack trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ctx := cmd.Context()

	if !indexService.Ready() {
		cmd.Println("Building index from unlocked modules...")
		if err := indexService.Build(ctx); err != nil {
			return fmt.Errorf("build index: %w", err)
		}
	}

	if err := tutorService.Init(ctx); err != nil {
		return fmt.Errorf("initialise tutor: %w", err)
	}

	app := tui.NewChat(tui.Ports{
		Tutor: tutorService,
		Index: indexService,
	})
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat error: %w", err)
	}

	return nil
}
