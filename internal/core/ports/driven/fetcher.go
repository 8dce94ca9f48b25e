package driven

import "context"

// ContentFetcher retrieves raw course HTML by content identifier.
//
// Fetch failures are per-document: the indexer logs and skips the
// document, so implementations should wrap errors with
// domain.ErrFetchFailed rather than inventing their own sentinels.
type ContentFetcher interface {
	// Fetch returns the raw HTML of one course document.
	Fetch(ctx context.Context, id string) ([]byte, error)
}
