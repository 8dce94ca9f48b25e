package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

func sizedChat() *Chat {
	c := NewChat(Ports{})
	model, _ := c.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*Chat)
}

func TestNewChat(t *testing.T) {
	c := NewChat(Ports{})

	assert.NotNil(t, c)
	assert.Empty(t, c.transcript)
	assert.False(t, c.waiting)
}

func TestChat_QuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		c := sizedChat()

		_, cmd := c.Update(tea.KeyMsg{Type: key})

		require.NotNil(t, cmd, "key %v", key)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestChat_AnswerAppendsToTranscript(t *testing.T) {
	c := sizedChat()

	model, _ := c.Update(answerMsg{
		question: "what is a pointer?",
		answer: &domain.Answer{
			Text: "an address",
			Citations: []domain.Citation{
				{Text: "Module 1, Section: Pointers"},
			},
		},
	})
	c = model.(*Chat)

	require.Len(t, c.transcript, 1)
	assert.Equal(t, "what is a pointer?", c.transcript[0].question)
	assert.Equal(t, "an address", c.transcript[0].answer)
	assert.False(t, c.waiting)

	view := c.View()
	assert.Contains(t, view, "what is a pointer?")
	assert.Contains(t, view, "an address")
}

func TestChat_AnswerErrorShownInStatus(t *testing.T) {
	c := sizedChat()

	model, _ := c.Update(answerMsg{
		question: "q",
		err:      errors.New("rate limit exceeded, wait a moment and try again"),
	})
	c = model.(*Chat)

	assert.Empty(t, c.transcript)
	assert.Contains(t, c.View(), "rate limit exceeded")
}

func TestChat_ResetClearsTranscript(t *testing.T) {
	c := sizedChat()
	model, _ := c.Update(answerMsg{question: "q", answer: &domain.Answer{Text: "a"}})
	c = model.(*Chat)
	require.Len(t, c.transcript, 1)

	model, _ = c.Update(resetMsg{})
	c = model.(*Chat)

	assert.Empty(t, c.transcript)
}

func TestChat_ResetErrorKeepsTranscript(t *testing.T) {
	c := sizedChat()
	model, _ := c.Update(answerMsg{question: "q", answer: &domain.Answer{Text: "a"}})
	c = model.(*Chat)

	model, _ = c.Update(resetMsg{err: errors.New("clear history: locked")})
	c = model.(*Chat)

	assert.Len(t, c.transcript, 1)
	assert.Contains(t, c.View(), "clear history")
}
