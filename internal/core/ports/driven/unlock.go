package driven

import "context"

// UnlockGate exposes the student's current unlock state. The gate is
// owned by the course guide; the indexer only ever reads it.
//
// Implementations must answer from current state on every call. The
// indexer re-reads the gate at the start of every build, so cached or
// stale answers would leak locked content into the index.
type UnlockGate interface {
	// ListUnlockedIDs returns the identifiers of all currently
	// unlocked course documents, in stable course order.
	ListUnlockedIDs(ctx context.Context) ([]string, error)

	// IsUnlocked reports whether a single course document is unlocked.
	IsUnlocked(ctx context.Context, id string) (bool, error)
}
