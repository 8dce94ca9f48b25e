package driven

import (
	"context"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// ChunkStore holds the searchable chunk collection.
//
// The store is replaced wholesale on every index rebuild, never
// mutated incrementally. ReplaceAll must swap the collection
// atomically so that readers observe either the previous complete
// snapshot or the new one, not a partial mix.
type ChunkStore interface {
	// ReplaceAll atomically replaces the entire collection.
	ReplaceAll(ctx context.Context, chunks []domain.ContentChunk) error

	// All returns the current snapshot in insertion order. Callers
	// must not modify the returned slice.
	All(ctx context.Context) ([]domain.ContentChunk, error)

	// Count returns the number of chunks in the current snapshot.
	Count(ctx context.Context) (int, error)
}
