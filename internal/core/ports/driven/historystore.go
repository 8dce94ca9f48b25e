package driven

import (
	"context"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// ConversationStore persists the tutoring conversation history.
// History is append-only; Clear removes everything on session reset.
type ConversationStore interface {
	// Append records one completed conversation turn.
	Append(ctx context.Context, turn domain.ConversationTurn) error

	// List returns all recorded turns in chronological order.
	List(ctx context.Context) ([]domain.ConversationTurn, error)

	// Clear removes all recorded turns.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}
