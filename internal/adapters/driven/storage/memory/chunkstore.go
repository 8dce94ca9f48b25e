package memory

import (
	"context"
	"sync"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure ChunkStore implements the interface.
var _ driven.ChunkStore = (*ChunkStore)(nil)

// ChunkStore is an in-memory implementation of driven.ChunkStore.
//
// The collection is held as an immutable snapshot behind a mutex.
// ReplaceAll swaps the whole slice in one assignment, so readers
// always observe a complete collection.
type ChunkStore struct {
	mu     sync.RWMutex
	chunks []domain.ContentChunk
}

// NewChunkStore creates a new empty in-memory chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{}
}

// ReplaceAll atomically replaces the entire collection.
func (s *ChunkStore) ReplaceAll(_ context.Context, chunks []domain.ContentChunk) error {
	// Copy so later mutation of the caller's slice cannot corrupt
	// the snapshot.
	snapshot := make([]domain.ContentChunk, len(chunks))
	copy(snapshot, chunks)

	s.mu.Lock()
	s.chunks = snapshot
	s.mu.Unlock()
	return nil
}

// All returns the current snapshot in insertion order.
func (s *ChunkStore) All(_ context.Context) ([]domain.ContentChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chunks, nil
}

// Count returns the number of chunks in the current snapshot.
func (s *ChunkStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks), nil
}
