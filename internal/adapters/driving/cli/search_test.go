package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// stubIndex is a test double for driving.IndexService.
type stubIndex struct {
	ready      bool
	buildCalls int
	buildErr   error
	stats      domain.IndexStats
}

func (s *stubIndex) Build(_ context.Context) error {
	s.buildCalls++
	if s.buildErr == nil {
		s.ready = true
	}
	return s.buildErr
}

func (s *stubIndex) Rebuild(ctx context.Context) error { return s.Build(ctx) }
func (s *stubIndex) Ready() bool                       { return s.ready }
func (s *stubIndex) Stats(_ context.Context) (domain.IndexStats, error) {
	return s.stats, nil
}

// stubSearch is a test double for driving.SearchService.
type stubSearch struct {
	results []domain.ScoredChunk
	err     error
}

func (s *stubSearch) Search(_ context.Context, _ string, _ int) ([]domain.ScoredChunk, error) {
	return s.results, s.err
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestSearchCmd_PrintsResults(t *testing.T) {
	origIndex, origSearch := indexService, searchService
	defer func() { indexService, searchService = origIndex, origSearch }()

	indexService = &stubIndex{ready: true}
	searchService = &stubSearch{results: []domain.ScoredChunk{
		{
			Chunk: domain.ContentChunk{
				Citation: "Module 1, Section: Pointers",
				Text:     "A pointer stores an address.",
			},
			Score: 7.2,
		},
	}}

	out, err := execute(t, "search", "pointers")

	require.NoError(t, err)
	assert.Contains(t, out, "Module 1, Section: Pointers")
	assert.Contains(t, out, "7.2")
	assert.Contains(t, out, "A pointer stores an address.")
}

func TestSearchCmd_BuildsIndexWhenNotReady(t *testing.T) {
	origIndex, origSearch := indexService, searchService
	defer func() { indexService, searchService = origIndex, origSearch }()

	idx := &stubIndex{ready: false}
	indexService = idx
	searchService = &stubSearch{}

	_, err := execute(t, "search", "pointers")

	require.NoError(t, err)
	assert.Equal(t, 1, idx.buildCalls)
}

func TestSearchCmd_NoResults(t *testing.T) {
	origIndex, origSearch := indexService, searchService
	defer func() { indexService, searchService = origIndex, origSearch }()

	indexService = &stubIndex{ready: true}
	searchService = &stubSearch{}

	out, err := execute(t, "search", "nothing")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_NotConfigured(t *testing.T) {
	origIndex, origSearch := indexService, searchService
	defer func() { indexService, searchService = origIndex, origSearch }()

	indexService = nil
	searchService = nil

	_, err := execute(t, "search", "anything")

	assert.Error(t, err)
}

func TestIndexCmd_PrintsStats(t *testing.T) {
	origIndex := indexService
	defer func() { indexService = origIndex }()

	indexService = &stubIndex{stats: domain.IndexStats{
		TotalChunks: 12,
		Sources:     3,
		Sections:    9,
		CodeBlocks:  3,
		Ready:       true,
	}}

	out, err := execute(t, "index")

	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 12 chunks from 3 modules")
}
