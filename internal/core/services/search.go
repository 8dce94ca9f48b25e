package services

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driving"
	"github.com/campus-labs/tutor-cli/internal/logger"
	"github.com/campus-labs/tutor-cli/internal/postprocessors/keywords"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// implementationTerms marks queries that ask about code. Matching
// queries boost code chunks during ranking.
var implementationTerms = regexp.MustCompile(
	`(?i)\b(code|function|variable|pointer|struct|array|implementation|syntax)\b`)

// SearchService scores every indexed chunk against the query keywords
// and returns the top results.
type SearchService struct {
	store    driven.ChunkStore
	index    driving.IndexService
	keywords *keywords.Extractor
	cfg      domain.ScoringConfig
}

// NewSearchService creates a new search service. The extractor must be
// the same one used at index time so query tokens line up with stored
// keyword sets.
func NewSearchService(
	store driven.ChunkStore,
	index driving.IndexService,
	extractor *keywords.Extractor,
	cfg domain.ScoringConfig,
) *SearchService {
	return &SearchService{
		store:    store,
		index:    index,
		keywords: extractor,
		cfg:      cfg,
	}
}

// Search ranks all indexed chunks against the query and returns the
// topK best. Fails gracefully with an empty result when the index is
// not ready, holds no chunks, or the query yields no keywords.
func (s *SearchService) Search(ctx context.Context, query string, topK int) ([]domain.ScoredChunk, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if topK <= 0 {
		topK = domain.DefaultTopK
	}

	if !s.index.Ready() {
		logger.Warn("Index not built yet")
		return []domain.ScoredChunk{}, nil
	}

	queryWords := s.keywords.Extract(query)
	if len(queryWords) == 0 {
		logger.Debug("Query yields no keywords")
		return []domain.ScoredChunk{}, nil
	}
	logger.Debug("Query keywords: %v", queryWords)

	chunks, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read chunk collection: %w", err)
	}
	if len(chunks) == 0 {
		return []domain.ScoredChunk{}, nil
	}

	codeQuery := implementationTerms.MatchString(query)

	results := make([]domain.ScoredChunk, 0, len(chunks))
	for i := range chunks {
		score := s.score(&chunks[i], queryWords, codeQuery)
		if score > 0 {
			results = append(results, domain.ScoredChunk{
				Chunk: chunks[i],
				Score: score,
			})
		}
	}

	// Stable sort: ties keep insertion order, so the first-indexed
	// chunk wins.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}

	logger.Info("Search for %q found %d results", query, len(results))
	return results, nil
}

// score accumulates the per-keyword signals, then applies the
// per-kind boost.
func (s *SearchService) score(chunk *domain.ContentChunk, queryWords []string, codeQuery bool) float64 {
	textLower := strings.ToLower(chunk.Text)
	sectionLower := strings.ToLower(chunk.SectionTitle)
	sourceLower := strings.ToLower(chunk.SourceTitle)

	score := 0.0
	for _, word := range queryWords {
		if chunk.HasKeyword(word) {
			score += s.cfg.KeywordMatch
		}
		if strings.Contains(textLower, word) {
			score += s.cfg.ContentMatch
		}
		if chunk.SectionTitle != "" && strings.Contains(sectionLower, word) {
			score += s.cfg.SectionTitleMatch
		}
		if strings.Contains(sourceLower, word) {
			score += s.cfg.SourceTitleMatch
		}
	}

	switch chunk.Kind {
	case domain.ChunkKindCode:
		if codeQuery {
			score *= s.cfg.CodeBoost
		}
	case domain.ChunkKindSection:
		score *= s.cfg.SectionBoost
	}

	return score
}
