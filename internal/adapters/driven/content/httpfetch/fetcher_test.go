package httpfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/module_1.html", r.URL.Path)
		_, _ = w.Write([]byte("<html><body>content</body></html>"))
	}))
	defer server.Close()

	fetcher := New(server.URL)

	body, err := fetcher.Fetch(context.Background(), "module_1")

	require.NoError(t, err)
	assert.Contains(t, string(body), "content")
}

func TestFetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := New(server.URL)

	_, err := fetcher.Fetch(context.Background(), "locked_module")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetch_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	fetcher := New(server.URL)

	_, err := fetcher.Fetch(context.Background(), "module_1")

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	fetcher := New(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fetcher.Fetch(ctx, "module_1")

	assert.Error(t, err)
}
