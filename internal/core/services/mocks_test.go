package services

import (
	"context"
	"slices"
	"sync"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
)

// mockGate is a test double for driven.UnlockGate.
type mockGate struct {
	mu  sync.Mutex
	ids []string
	err error
}

func (m *mockGate) ListUnlockedIDs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return slices.Clone(m.ids), nil
}

func (m *mockGate) IsUnlocked(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Contains(m.ids, id), m.err
}

func (m *mockGate) setIDs(ids []string) {
	m.mu.Lock()
	m.ids = ids
	m.mu.Unlock()
}

// mockFetcher is a test double for driven.ContentFetcher.
type mockFetcher struct {
	docs  map[string][]byte
	errs  map[string]error
	calls int
}

func (m *mockFetcher) Fetch(_ context.Context, id string) ([]byte, error) {
	m.calls++
	if err, ok := m.errs[id]; ok {
		return nil, err
	}
	if doc, ok := m.docs[id]; ok {
		return doc, nil
	}
	return nil, domain.ErrFetchFailed
}

// mockChunkStore is a test double for driven.ChunkStore.
type mockChunkStore struct {
	mu           sync.Mutex
	chunks       []domain.ContentChunk
	replaceCalls int
	replaceErr   error
}

func (m *mockChunkStore) ReplaceAll(_ context.Context, chunks []domain.ContentChunk) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaceCalls++
	m.chunks = chunks
	return nil
}

func (m *mockChunkStore) All(_ context.Context) ([]domain.ContentChunk, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chunks, nil
}

func (m *mockChunkStore) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.chunks), nil
}

// mockBackend is a test double for driven.GenerativeBackend.
type mockBackend struct {
	availability driven.Availability
	availErr     error
	createErr    error
	session      *mockSession
	createCalls  int
}

func (m *mockBackend) Availability(_ context.Context) (driven.Availability, error) {
	return m.availability, m.availErr
}

func (m *mockBackend) CreateSession(_ context.Context, _ driven.SessionConfig) (driven.GenerativeSession, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.session == nil {
		m.session = &mockSession{reply: "mock answer"}
	}
	return m.session, nil
}

// mockSession is a test double for driven.GenerativeSession.
type mockSession struct {
	reply        string
	err          error
	promptCalls  int
	destroyCalls int
	lastPrompt   string
}

func (m *mockSession) Prompt(_ context.Context, text string) (string, error) {
	m.promptCalls++
	m.lastPrompt = text
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockSession) Destroy() error {
	m.destroyCalls++
	return nil
}

// mockHistory is a test double for driven.ConversationStore.
type mockHistory struct {
	mu        sync.Mutex
	turns     []domain.ConversationTurn
	appendErr error
	clearErr  error
}

func (m *mockHistory) Append(_ context.Context, turn domain.ConversationTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.appendErr != nil {
		return m.appendErr
	}
	m.turns = append(m.turns, turn)
	return nil
}

func (m *mockHistory) List(_ context.Context) ([]domain.ConversationTurn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.turns), nil
}

func (m *mockHistory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.turns = nil
	return nil
}

func (m *mockHistory) Close() error { return nil }

// mockSearch is a test double for driving.SearchService.
type mockSearch struct {
	results []domain.ScoredChunk
	err     error
	queries []string
}

func (m *mockSearch) Search(_ context.Context, query string, _ int) ([]domain.ScoredChunk, error) {
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}
