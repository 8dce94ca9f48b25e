package driving

import (
	"context"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// SearchService ranks indexed chunks against a free-text query.
type SearchService interface {
	// Search returns the topK highest-scoring chunks for the query,
	// sorted by descending score with stable insertion-order ties.
	// Returns an empty slice when the index is not ready, holds no
	// chunks, or the query yields no keywords.
	Search(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error)
}
