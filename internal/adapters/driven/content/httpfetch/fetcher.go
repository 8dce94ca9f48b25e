// Package httpfetch fetches course documents over HTTP from the
// course content server.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.ContentFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// maxDocumentSize caps a fetched document at 10 MiB. Course pages
	// are small; anything larger is a misconfigured endpoint.
	maxDocumentSize = 10 << 20
)

// Fetcher retrieves course HTML from a base URL. Document identifiers
// map to paths: id "module_3" fetches <baseURL>/module_3.html.
type Fetcher struct {
	client  *http.Client
	baseURL string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the HTTP client. Useful for testing.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// New creates a fetcher rooted at baseURL.
func New(baseURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{Timeout: DefaultTimeout},
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the raw HTML of one course document. All failures wrap
// domain.ErrFetchFailed so the indexer can skip the document.
func (f *Fetcher) Fetch(ctx context.Context, id string) ([]byte, error) {
	docURL, err := url.JoinPath(f.baseURL, id+".html")
	if err != nil {
		return nil, fmt.Errorf("%w: build url for %s: %v", domain.ErrFetchFailed, id, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, docURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrFetchFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", domain.ErrFetchFailed, docURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrFetchFailed, err)
	}

	return body, nil
}
