package mcp

import (
	"context"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// mockIndex is a test double for driving.IndexService.
type mockIndex struct {
	stats domain.IndexStats
	err   error
}

func (m *mockIndex) Build(_ context.Context) error   { return nil }
func (m *mockIndex) Rebuild(_ context.Context) error { return nil }
func (m *mockIndex) Ready() bool                     { return m.stats.Ready }
func (m *mockIndex) Stats(_ context.Context) (domain.IndexStats, error) {
	return m.stats, m.err
}

// mockSearch is a test double for driving.SearchService.
type mockSearch struct {
	results   []domain.ScoredChunk
	err       error
	lastQuery string
	lastTopK  int
}

func (m *mockSearch) Search(_ context.Context, query string, topK int) ([]domain.ScoredChunk, error) {
	m.lastQuery = query
	m.lastTopK = topK
	return m.results, m.err
}

// mockTutor is a test double for driving.TutorService.
type mockTutor struct {
	answer *domain.Answer
	err    error
}

func (m *mockTutor) Init(_ context.Context) error { return nil }
func (m *mockTutor) Ask(_ context.Context, _ string) (*domain.Answer, error) {
	return m.answer, m.err
}
func (m *mockTutor) Reset(_ context.Context) error { return nil }
func (m *mockTutor) History(_ context.Context) ([]domain.ConversationTurn, error) {
	return nil, nil
}
func (m *mockTutor) Stats(_ context.Context) (domain.TutorStats, error) {
	return domain.TutorStats{}, nil
}
