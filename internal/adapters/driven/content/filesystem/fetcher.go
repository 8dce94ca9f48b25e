// Package filesystem fetches course documents from a local directory.
// This is the default content source: course materials ship as a
// directory of HTML files alongside the unlock-state file.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.ContentFetcher = (*Fetcher)(nil)

// Fetcher reads course HTML files from a root directory. Document
// identifiers map to file names: id "module_3" reads
// <root>/module_3.html.
type Fetcher struct {
	root string
}

// New creates a fetcher rooted at the given directory.
func New(root string) *Fetcher {
	return &Fetcher{root: root}
}

// Fetch returns the raw HTML of one course document. All failures wrap
// domain.ErrFetchFailed so the indexer can skip the document.
func (f *Fetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Identifiers are bare names; reject anything that could escape
	// the content root.
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, fmt.Errorf("%w: invalid document id %q", domain.ErrFetchFailed, id)
	}

	path := filepath.Join(f.root, id+".html")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	return data, nil
}
