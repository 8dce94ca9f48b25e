package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driving"
	"github.com/campus-labs/tutor-cli/internal/logger"
	"github.com/campus-labs/tutor-cli/internal/normalisers/coursehtml"
	"github.com/campus-labs/tutor-cli/internal/postprocessors/chunker"
	"github.com/campus-labs/tutor-cli/internal/postprocessors/keywords"
)

// Ensure IndexerService implements the interface.
var _ driving.IndexService = (*IndexerService)(nil)

// IndexerService builds the searchable chunk collection from the
// student's unlocked course documents.
//
// Builds run the full pipeline (gate -> fetch -> parse -> chunk ->
// keywords) into a fresh slice and swap it into the chunk store in one
// call, so concurrent searches see either the previous complete
// snapshot or the new one. Overlapping rebuilds are rejected.
type IndexerService struct {
	gate       driven.UnlockGate
	fetcher    driven.ContentFetcher
	store      driven.ChunkStore
	normaliser *coursehtml.Normaliser
	chunks     *chunker.Processor
	keywords   *keywords.Extractor

	mu       sync.Mutex
	building bool
	ready    bool
}

// NewIndexerService creates a new indexer service.
func NewIndexerService(
	gate driven.UnlockGate,
	fetcher driven.ContentFetcher,
	store driven.ChunkStore,
	chunks *chunker.Processor,
	extractor *keywords.Extractor,
) *IndexerService {
	return &IndexerService{
		gate:       gate,
		fetcher:    fetcher,
		store:      store,
		normaliser: coursehtml.New(),
		chunks:     chunks,
		keywords:   extractor,
	}
}

// Build populates the index from all currently unlocked course
// documents. The unlock gate is read fresh on every call. Individual
// document failures are logged and skipped; only gate or store
// failures abort the build.
func (s *IndexerService) Build(ctx context.Context) error {
	if err := s.beginBuild(); err != nil {
		return err
	}
	defer s.endBuild()

	logger.Section("Index Build")

	ids, err := s.gate.ListUnlockedIDs(ctx)
	if err != nil {
		return fmt.Errorf("list unlocked documents: %w", err)
	}
	logger.Info("Indexing %d unlocked documents", len(ids))

	var all []domain.ContentChunk
	indexed := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		chunks, err := s.indexDocument(ctx, id)
		if err != nil {
			logger.Warn("Skipping %s: %v", id, err)
			continue
		}
		all = append(all, chunks...)
		indexed++
	}

	if err := s.store.ReplaceAll(ctx, all); err != nil {
		return fmt.Errorf("replace chunk collection: %w", err)
	}

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()

	logger.Info("Indexed %d chunks from %d documents", len(all), indexed)
	return nil
}

// Rebuild re-runs Build. The previous snapshot stays searchable until
// the swap; domain.ErrRebuildInProgress is returned if a build is
// already running.
func (s *IndexerService) Rebuild(ctx context.Context) error {
	logger.Debug("Rebuilding index")
	return s.Build(ctx)
}

// Ready reports whether the index has completed a build.
func (s *IndexerService) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Stats returns a summary of the current index.
func (s *IndexerService) Stats(ctx context.Context) (domain.IndexStats, error) {
	chunks, err := s.store.All(ctx)
	if err != nil {
		return domain.IndexStats{}, fmt.Errorf("read chunk collection: %w", err)
	}

	stats := domain.IndexStats{
		TotalChunks: len(chunks),
		Ready:       s.Ready(),
	}

	sources := make(map[string]struct{})
	for i := range chunks {
		sources[chunks[i].SourceID] = struct{}{}
		switch chunks[i].Kind {
		case domain.ChunkKindSection:
			stats.Sections++
		case domain.ChunkKindCode:
			stats.CodeBlocks++
		}
	}
	stats.Sources = len(sources)

	return stats, nil
}

// indexDocument fetches, parses and chunks one course document.
func (s *IndexerService) indexDocument(ctx context.Context, id string) ([]domain.ContentChunk, error) {
	raw, err := s.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := s.normaliser.Normalise(id, raw)
	if err != nil {
		return nil, err
	}

	var chunks []domain.ContentChunk

	for _, section := range doc.Sections {
		for _, piece := range s.chunks.Split(section.Text) {
			chunks = append(chunks, domain.ContentChunk{
				ID:           uuid.New().String(),
				SourceID:     id,
				SourceTitle:  doc.Title,
				SectionID:    section.ID,
				SectionTitle: section.Title,
				Kind:         domain.ChunkKindSection,
				Text:         piece,
				Keywords:     s.keywords.Extract(piece + " " + section.Title),
				Citation:     fmt.Sprintf("%s, Section: %s", doc.Title, section.Title),
				Locator:      fmt.Sprintf("%s#%s", id, section.ID),
			})
		}
	}

	for _, code := range doc.CodeBlocks {
		// Code blocks are never split; oversized ones are clipped to
		// keep the chunk-size invariant.
		if max := s.chunks.MaxChunkSize(); len(code) > max {
			code = code[:max]
		}
		chunks = append(chunks, domain.ContentChunk{
			ID:          uuid.New().String(),
			SourceID:    id,
			SourceTitle: doc.Title,
			Kind:        domain.ChunkKindCode,
			Text:        code,
			Keywords:    s.keywords.Extract(code),
			Citation:    fmt.Sprintf("%s, Code Example", doc.Title),
			Locator:     id,
		})
	}

	logger.Debug("Indexed %s: %d sections, %d code blocks, %d chunks",
		id, len(doc.Sections), len(doc.CodeBlocks), len(chunks))

	return chunks, nil
}

// beginBuild marks a build as running, rejecting overlap.
func (s *IndexerService) beginBuild() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.building {
		return domain.ErrRebuildInProgress
	}
	s.building = true
	return nil
}

func (s *IndexerService) endBuild() {
	s.mu.Lock()
	s.building = false
	s.mu.Unlock()
}
