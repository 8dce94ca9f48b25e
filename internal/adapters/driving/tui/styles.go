package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the pre-configured lipgloss styles for the chat view.
type Styles struct {
	// Title style for the header bar.
	Title lipgloss.Style

	// Student style for the student's questions.
	Student lipgloss.Style

	// Tutor style for the tutor's answers.
	Tutor lipgloss.Style

	// Citation style for source citations under an answer.
	Citation lipgloss.Style

	// Status style for the status line.
	Status lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Input style for the question input border.
	Input lipgloss.Style
}

// DefaultStyles returns the default chat styling.
func DefaultStyles() *Styles {
	var (
		primary = lipgloss.Color("#7C3AED") // Purple
		subtle  = lipgloss.Color("#6C7086") // Medium gray
		green   = lipgloss.Color("#A6E3A1")
		red     = lipgloss.Color("#F38BA8")
		border  = lipgloss.Color("#45475A")
	)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1),
		Student: lipgloss.NewStyle().
			Bold(true).
			Foreground(green),
		Tutor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),
		Citation: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(subtle),
		Error: lipgloss.NewStyle().
			Foreground(red),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border),
	}
}
