package memory

import (
	"context"
	"sync"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure ConversationStore implements the interface.
var _ driven.ConversationStore = (*ConversationStore)(nil)

// ConversationStore is an in-memory implementation of
// driven.ConversationStore. History lives only for the process
// lifetime; use the sqlite store for persistence across runs.
type ConversationStore struct {
	mu    sync.RWMutex
	turns []domain.ConversationTurn
}

// NewConversationStore creates a new empty in-memory history store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{}
}

// Append records one completed conversation turn.
func (s *ConversationStore) Append(_ context.Context, turn domain.ConversationTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turn)
	return nil
}

// List returns all recorded turns in chronological order.
func (s *ConversationStore) List(_ context.Context) ([]domain.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out, nil
}

// Clear removes all recorded turns.
func (s *ConversationStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
	return nil
}

// Close releases resources. No-op for the in-memory store.
func (s *ConversationStore) Close() error {
	return nil
}
