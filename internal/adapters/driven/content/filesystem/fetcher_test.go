package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

func TestFetch_Success(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "module_1.html"),
		[]byte("<html><body>lesson</body></html>"), 0600))

	fetcher := New(dir)

	body, err := fetcher.Fetch(context.Background(), "module_1")

	require.NoError(t, err)
	assert.Contains(t, string(body), "lesson")
}

func TestFetch_MissingFile(t *testing.T) {
	fetcher := New(t.TempDir())

	_, err := fetcher.Fetch(context.Background(), "module_9")

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetch_RejectsPathTraversal(t *testing.T) {
	fetcher := New(t.TempDir())

	for _, id := range []string{"../etc/passwd", "a/b", `a\b`, ".."} {
		_, err := fetcher.Fetch(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrFetchFailed, "id %q", id)
	}
}

func TestFetch_ContextCancelled(t *testing.T) {
	fetcher := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.Fetch(ctx, "module_1")

	assert.ErrorIs(t, err, context.Canceled)
}
