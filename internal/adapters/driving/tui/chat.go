// Package tui implements the interactive chat view using Bubbletea.
// The view follows the Elm architecture: all tutor calls run as
// commands and return messages, so the UI never blocks on generation.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// entry is one rendered exchange in the transcript.
type entry struct {
	question  string
	answer    string
	citations []domain.Citation
}

// answerMsg carries the tutor's reply back to the model.
type answerMsg struct {
	question string
	answer   *domain.Answer
	err      error
}

// resetMsg reports the outcome of a conversation reset.
type resetMsg struct {
	err error
}

// Chat is the interactive chat model. It implements tea.Model.
type Chat struct {
	ports  Ports
	ctx    context.Context
	styles *Styles

	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model

	transcript []entry
	waiting    bool
	errText    string
	width      int
	height     int
	ready      bool
}

// NewChat creates the chat model.
func NewChat(ports Ports) *Chat {
	input := textarea.New()
	input.Placeholder = "Ask about your course..."
	input.ShowLineNumbers = false
	input.SetHeight(2)
	input.CharLimit = 1000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Chat{
		ports:   ports,
		ctx:     context.Background(),
		styles:  DefaultStyles(),
		input:   input,
		spinner: sp,
	}
}

// WithContext sets the context used for tutor calls.
func (c *Chat) WithContext(ctx context.Context) {
	if ctx != nil {
		c.ctx = ctx
	}
}

// Init implements tea.Model.
func (c *Chat) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		c.layout()
		c.refreshViewport()
		c.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return c, tea.Quit

		case tea.KeyCtrlR:
			if !c.waiting {
				c.waiting = true
				c.errText = ""
				cmds = append(cmds, c.resetCmd(), c.spinner.Tick)
			}
			return c, tea.Batch(cmds...)

		case tea.KeyEnter:
			question := strings.TrimSpace(c.input.Value())
			if question == "" || c.waiting {
				break
			}
			c.input.Reset()
			c.waiting = true
			c.errText = ""
			cmds = append(cmds, c.askCmd(question), c.spinner.Tick)
			return c, tea.Batch(cmds...)
		}

	case answerMsg:
		c.waiting = false
		if msg.err != nil {
			c.errText = msg.err.Error()
		} else {
			c.transcript = append(c.transcript, entry{
				question:  msg.question,
				answer:    msg.answer.Text,
				citations: msg.answer.Citations,
			})
		}
		c.refreshViewport()
		c.viewport.GotoBottom()

	case resetMsg:
		c.waiting = false
		if msg.err != nil {
			c.errText = msg.err.Error()
		} else {
			c.transcript = nil
		}
		c.refreshViewport()

	case spinner.TickMsg:
		if c.waiting {
			var cmd tea.Cmd
			c.spinner, cmd = c.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	cmds = append(cmds, cmd)

	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View implements tea.Model.
func (c *Chat) View() string {
	if !c.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(c.styles.Title.Render("Course Tutor"))
	b.WriteString("\n")
	b.WriteString(c.viewport.View())
	b.WriteString("\n")
	b.WriteString(c.statusLine())
	b.WriteString("\n")
	b.WriteString(c.styles.Input.Width(c.width - 2).Render(c.input.View()))
	return b.String()
}

// askCmd sends the question to the tutor off the UI goroutine.
func (c *Chat) askCmd(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := c.ports.Tutor.Ask(c.ctx, question)
		return answerMsg{question: question, answer: answer, err: err}
	}
}

// resetCmd resets the conversation off the UI goroutine.
func (c *Chat) resetCmd() tea.Cmd {
	return func() tea.Msg {
		return resetMsg{err: c.ports.Tutor.Reset(c.ctx)}
	}
}

// layout sizes the viewport and input to the terminal.
func (c *Chat) layout() {
	inputHeight := 4 // bordered two-line textarea
	chrome := 3      // title + status + spacing
	vpHeight := c.height - inputHeight - chrome
	if vpHeight < 3 {
		vpHeight = 3
	}

	c.viewport = viewport.New(c.width, vpHeight)
	c.input.SetWidth(c.width - 4)
}

// refreshViewport re-renders the transcript into the viewport.
func (c *Chat) refreshViewport() {
	var b strings.Builder

	if len(c.transcript) == 0 {
		b.WriteString(c.styles.Status.Render(
			"Ask a question about your unlocked course modules.\n" +
				"Enter to send, Ctrl+R to reset, Esc to quit."))
	}

	for i := range c.transcript {
		e := &c.transcript[i]
		b.WriteString(c.styles.Student.Render("You: "))
		b.WriteString(e.question)
		b.WriteString("\n\n")
		b.WriteString(c.styles.Tutor.Render(e.answer))
		b.WriteString("\n")
		for _, cit := range e.citations {
			b.WriteString(c.styles.Citation.Render(fmt.Sprintf("  [%s]", cit.Text)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	c.viewport.SetContent(b.String())
}

// statusLine renders the spinner, error, or index state.
func (c *Chat) statusLine() string {
	if c.waiting {
		return c.styles.Status.Render(c.spinner.View() + " Thinking...")
	}
	if c.errText != "" {
		return c.styles.Error.Render("Error: " + c.errText)
	}
	if c.ports.Index != nil && !c.ports.Index.Ready() {
		return c.styles.Error.Render("Index not built yet; answers may be empty")
	}
	return c.styles.Status.Render(fmt.Sprintf("%d exchanges", len(c.transcript)))
}
