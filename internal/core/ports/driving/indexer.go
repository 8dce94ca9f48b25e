package driving

import (
	"context"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// IndexService builds and rebuilds the content index from the
// student's unlocked course documents.
type IndexService interface {
	// Build populates the index from all currently unlocked course
	// documents. Individual document failures are logged and skipped.
	Build(ctx context.Context) error

	// Rebuild clears the index and re-runs Build. Returns
	// domain.ErrRebuildInProgress if a rebuild is already running.
	Rebuild(ctx context.Context) error

	// Ready reports whether the index has completed a build.
	Ready() bool

	// Stats returns a summary of the current index.
	Stats(ctx context.Context) (domain.IndexStats, error)
}
