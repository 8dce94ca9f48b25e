package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
)

func TestPromptStore_LoadDefault(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptTutorSystem)

	require.NoError(t, err)
	assert.Contains(t, prompt, "course tutor")
	assert.Contains(t, prompt, "NEVER provide complete code solutions")
}

func TestPromptStore_CreatesDefaultFilesLazily(t *testing.T) {
	dir := t.TempDir()
	promptDir := filepath.Join(dir, "prompts")
	store, err := NewPromptStore(promptDir)
	require.NoError(t, err)

	// Constructor performs no I/O
	_, statErr := os.Stat(promptDir)
	assert.True(t, os.IsNotExist(statErr))

	_, err = store.Load(driven.PromptTutorSystem)
	require.NoError(t, err)

	// First Load creates the directory and default file
	_, statErr = os.Stat(filepath.Join(promptDir, driven.PromptTutorSystem+".txt"))
	assert.NoError(t, statErr)
}

func TestPromptStore_CustomisedPromptWins(t *testing.T) {
	promptDir := t.TempDir()
	custom := "Answer everything in haiku."
	require.NoError(t, os.WriteFile(
		filepath.Join(promptDir, driven.PromptTutorSystem+".txt"),
		[]byte(custom), 0600))

	store, err := NewPromptStore(promptDir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptTutorSystem)

	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStore_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("no_such_prompt")

	assert.Error(t, err)
}

func TestPromptStore_ReloadPicksUpEdits(t *testing.T) {
	promptDir := t.TempDir()
	store, err := NewPromptStore(promptDir)
	require.NoError(t, err)

	// Load once to populate the cache
	_, err = store.Load(driven.PromptTutorSystem)
	require.NoError(t, err)

	edited := "Edited tutoring policy."
	require.NoError(t, os.WriteFile(
		filepath.Join(promptDir, driven.PromptTutorSystem+".txt"),
		[]byte(edited), 0600))

	// Cached value survives until Reload
	prompt, err := store.Load(driven.PromptTutorSystem)
	require.NoError(t, err)
	assert.NotEqual(t, edited, prompt)

	store.Reload()

	prompt, err = store.Load(driven.PromptTutorSystem)
	require.NoError(t, err)
	assert.Equal(t, edited, prompt)
}
