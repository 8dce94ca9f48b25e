package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

func TestNew_DefaultMaxSize(t *testing.T) {
	p := New()
	assert.Equal(t, domain.MaxChunkSize, p.MaxChunkSize())
}

func TestNew_WithMaxChunkSize(t *testing.T) {
	p := New(WithMaxChunkSize(100))
	assert.Equal(t, 100, p.MaxChunkSize())
}

func TestSplit_ShortTextIsOneChunk(t *testing.T) {
	p := New()

	chunks := p.Split("a short paragraph")

	require.Len(t, chunks, 1)
	assert.Equal(t, "a short paragraph", chunks[0])
}

func TestSplit_EmptyText(t *testing.T) {
	p := New()

	chunks := p.Split("")

	require.Len(t, chunks, 1)
	assert.Equal(t, "", chunks[0])
}

func TestSplit_ParagraphBoundaries(t *testing.T) {
	p := New(WithMaxChunkSize(30))

	text := "first paragraph here\n\nsecond paragraph here\n\nthird one"
	chunks := p.Split(text)

	// The second and third paragraphs fit in one chunk together.
	require.Len(t, chunks, 2)
	assert.Equal(t, "first paragraph here", chunks[0])
	assert.Equal(t, "second paragraph here\n\nthird one", chunks[1])
}

func TestSplit_PacksParagraphsUpToLimit(t *testing.T) {
	p := New(WithMaxChunkSize(60))

	text := "aaaa\n\nbbbb\n\n" + strings.Repeat("c", 50)
	chunks := p.Split(text)

	// First two paragraphs fit together; the long one forces a flush.
	require.Len(t, chunks, 2)
	assert.Equal(t, "aaaa\n\nbbbb", chunks[0])
	assert.Equal(t, strings.Repeat("c", 50), chunks[1])
}

func TestSplit_OversizedParagraphFallsBackToSentences(t *testing.T) {
	p := New(WithMaxChunkSize(50))

	sentence := strings.Repeat("x", 20)
	text := sentence + ". " + sentence + ". " + sentence
	chunks := p.Split(text)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 50)
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}

func TestSplit_NoChunkExceedsMaxSize(t *testing.T) {
	p := New(WithMaxChunkSize(80))

	var paragraphs []string
	for i := 0; i < 10; i++ {
		paragraphs = append(paragraphs, strings.Repeat("word ", 10))
	}
	chunks := p.Split(strings.Join(paragraphs, "\n\n"))

	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 80)
	}
}

func TestSplit_PreservesOrder(t *testing.T) {
	p := New(WithMaxChunkSize(25))

	text := "alpha alpha alpha\n\nbeta beta beta\n\ngamma gamma"
	chunks := p.Split(text)

	joined := strings.Join(chunks, " ")
	assert.Less(t, strings.Index(joined, "alpha"), strings.Index(joined, "beta"))
	assert.Less(t, strings.Index(joined, "beta"), strings.Index(joined, "gamma"))
}

func TestSplit_CollapsesMultipleBlankLines(t *testing.T) {
	p := New(WithMaxChunkSize(8))

	chunks := p.Split("aaaa\n\n\n\nbbbb")

	require.Len(t, chunks, 2)
	assert.Equal(t, "aaaa", chunks[0])
	assert.Equal(t, "bbbb", chunks[1])
}
