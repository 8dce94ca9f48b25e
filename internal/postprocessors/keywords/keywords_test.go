package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_Basic(t *testing.T) {
	e := New()

	got := e.Extract("The quick brown fox runs")

	// "the" is a stop word; "fox" and "runs" survive the length filter
	// only when longer than three characters.
	assert.Equal(t, []string{"quick", "brown", "runs"}, got)
}

func TestExtract_Lowercases(t *testing.T) {
	e := New()

	got := e.Extract("POINTER Arithmetic")

	assert.Equal(t, []string{"pointer", "arithmetic"}, got)
}

func TestExtract_DropsShortTokens(t *testing.T) {
	e := New()

	got := e.Extract("go is fun but cgo is hard")

	// Three-letter tokens and below are dropped.
	assert.Equal(t, []string{"hard"}, got)
}

func TestExtract_DropsStopWords(t *testing.T) {
	e := New()

	got := e.Extract("this that with from have memory allocation")

	assert.Equal(t, []string{"memory", "allocation"}, got)
}

func TestExtract_DedupesPreservingFirstOccurrence(t *testing.T) {
	e := New()

	got := e.Extract("pointer memory pointer memory stack pointer")

	assert.Equal(t, []string{"pointer", "memory", "stack"}, got)
}

func TestExtract_SplitsOnNonWordCharacters(t *testing.T) {
	e := New()

	got := e.Extract("linked-list, array/slice; pointer!")

	assert.Equal(t, []string{"linked", "list", "array", "slice", "pointer"}, got)
}

func TestExtract_EmptyInput(t *testing.T) {
	e := New()

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("   "))
	assert.Empty(t, e.Extract("a an the"))
}

func TestExtract_CustomStopWords(t *testing.T) {
	e := New(WithStopWords([]string{"banana"}))

	got := e.Extract("banana pointer this")

	// Custom set replaces the default, so "this" is no longer filtered.
	assert.Equal(t, []string{"pointer", "this"}, got)
}
