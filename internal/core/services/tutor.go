package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
	"github.com/campus-labs/tutor-cli/internal/core/ports/driving"
	"github.com/campus-labs/tutor-cli/internal/logger"
)

// Ensure TutorService implements the interface.
var _ driving.TutorService = (*TutorService)(nil)

// Generation parameters for the tutoring session. Low temperature and
// narrow sampling keep answers factual and consistent; they are fixed
// here and not negotiable at call sites.
const (
	generationTemperature = 0.3
	generationTopK        = 3
)

// retrievalLimit is the number of chunks retrieved per question.
const retrievalLimit = 5

// contextCharsPerChunk bounds how much of each retrieved chunk enters
// the prompt context block.
const contextCharsPerChunk = 800

// contextSeparator joins context block entries.
const contextSeparator = "\n\n---\n\n"

// FallbackAnswer is returned verbatim when retrieval finds nothing.
// The generative backend is not invoked in that case.
const FallbackAnswer = "I don't have information about that in your unlocked course modules. " +
	"This topic might be in a module you haven't unlocked yet, or it might not be " +
	"covered in the course materials."

// defaultSystemPrompt is the tutoring policy preamble installed as the
// session's system instruction. Operators can override it through the
// prompt store.
const defaultSystemPrompt = `You are a course tutor. Your role is to help students understand concepts from their unlocked course materials.

STRICT RULES:
1. ONLY use information from the "Context" sections provided in each query
2. If the question cannot be answered from the context, respond with: "I don't have information about that in your unlocked course modules. This topic might be covered in a module you haven't unlocked yet."
3. Always cite your sources using the format: [Module Name, Section Title]
4. NEVER provide complete code solutions for homework-style questions
5. When you detect homework/implementation questions (e.g., "write a function that...", "implement...", "complete the code...", "what is the output of..."):
   - Explain the underlying concept instead
   - Provide hints and general approach, NOT full solutions
   - Give pseudocode or conceptual steps, NOT working code
   - Suggest which course section to review

RESPONSE FORMAT:
- Be concise and clear (2-4 paragraphs maximum)
- Use the student's course materials to guide explanations
- Focus on "why" and "how things work" rather than just "what"
- Include relevant terminology from the course
- Always end with a source citation

Remember: Your goal is to teach concepts and guide learning, not to solve homework problems.`

// TutorService answers student questions from retrieved course text,
// constrained by the tutoring policy prompt.
type TutorService struct {
	backend driven.GenerativeBackend
	search  driving.SearchService
	history driven.ConversationStore
	prompts driven.PromptStore

	mu      sync.Mutex
	session driven.GenerativeSession
	ready   bool
	lastErr string
}

// NewTutorService creates a new tutor service. The prompt store is
// optional; when nil the built-in policy prompt is used.
func NewTutorService(
	backend driven.GenerativeBackend,
	search driving.SearchService,
	history driven.ConversationStore,
) *TutorService {
	return &TutorService{
		backend: backend,
		search:  search,
		history: history,
	}
}

// SetPromptStore sets the prompt store for loading a customised policy
// prompt. If not set, the service uses the built-in prompt.
func (s *TutorService) SetPromptStore(store driven.PromptStore) {
	s.prompts = store
}

// Init verifies the generative backend is available and opens a
// session configured with the tutoring policy prompt.
func (s *TutorService) Init(ctx context.Context) error {
	availability, err := s.backend.Availability(ctx)
	if err != nil {
		s.recordError(err)
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	switch availability {
	case driven.AvailabilityUnavailable:
		err := fmt.Errorf("%w: model cannot run on this machine", domain.ErrBackendUnavailable)
		s.recordError(err)
		return err
	case driven.AvailabilityDownloadable:
		logger.Info("Model download required; session creation may block until it completes")
	case driven.AvailabilityReady:
		logger.Debug("Generative backend ready")
	}

	session, err := s.backend.CreateSession(ctx, driven.SessionConfig{
		SystemPrompt: s.systemPrompt(),
		Temperature:  generationTemperature,
		TopK:         generationTopK,
	})
	if err != nil {
		s.recordError(err)
		return fmt.Errorf("create session: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.ready = true
	s.lastErr = ""
	s.mu.Unlock()

	logger.Info("Tutor engine initialised")
	return nil
}

// Ask answers one student question from retrieved course context.
// Either a complete answer with citations is returned, or an error;
// never a partial result. Failed calls are not recorded in history.
func (s *TutorService) Ask(ctx context.Context, question string) (*domain.Answer, error) {
	s.mu.Lock()
	session, ready := s.session, s.ready
	s.mu.Unlock()

	if !ready {
		return nil, domain.ErrEngineNotReady
	}

	results, err := s.search.Search(ctx, question, retrievalLimit)
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	if len(results) == 0 {
		logger.Debug("No chunks retrieved; returning fallback answer")
		return &domain.Answer{
			Text:      FallbackAnswer,
			Citations: []domain.Citation{},
		}, nil
	}

	answer, err := session.Prompt(ctx, buildPrompt(question, results))
	if err != nil {
		err = remapGenerationError(err)
		s.recordError(err)
		return nil, err
	}

	citations := dedupeCitations(results)

	turn := domain.ConversationTurn{
		ID:         uuid.New().String(),
		Question:   question,
		Answer:     answer,
		Citations:  citations,
		Timestamp:  time.Now(),
		ChunksUsed: len(results),
	}
	if err := s.history.Append(ctx, turn); err != nil {
		logger.Warn("Failed to record conversation turn: %v", err)
	}

	return &domain.Answer{
		Text:      answer,
		Citations: citations,
	}, nil
}

// Reset discards the generative session, clears the conversation
// history, and re-initialises. Session destroy errors are swallowed
// and logged.
func (s *TutorService) Reset(ctx context.Context) error {
	logger.Debug("Resetting conversation")

	s.mu.Lock()
	session := s.session
	s.session = nil
	s.ready = false
	s.mu.Unlock()

	if session != nil {
		if err := session.Destroy(); err != nil {
			logger.Warn("Error destroying session: %v", err)
		}
	}

	if err := s.history.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	return s.Init(ctx)
}

// History returns the recorded conversation turns in order.
func (s *TutorService) History(ctx context.Context) ([]domain.ConversationTurn, error) {
	return s.history.List(ctx)
}

// Stats returns a summary of the tutoring session.
func (s *TutorService) Stats(ctx context.Context) (domain.TutorStats, error) {
	turns, err := s.history.List(ctx)
	if err != nil {
		return domain.TutorStats{}, fmt.Errorf("list history: %w", err)
	}

	s.mu.Lock()
	stats := domain.TutorStats{
		Ready:          s.ready,
		TotalQuestions: len(turns),
		LastError:      s.lastErr,
	}
	s.mu.Unlock()

	if len(turns) > 0 {
		total := 0
		for i := range turns {
			total += turns[i].ChunksUsed
		}
		stats.AvgChunksUsed = float64(total) / float64(len(turns))
	}

	return stats, nil
}

// systemPrompt loads the policy prompt from the store, falling back to
// the built-in default.
func (s *TutorService) systemPrompt() string {
	if s.prompts == nil {
		return defaultSystemPrompt
	}
	prompt, err := s.prompts.Load(driven.PromptTutorSystem)
	if err != nil || prompt == "" {
		return defaultSystemPrompt
	}
	return prompt
}

// recordError keeps the most recent failure message for stats.
func (s *TutorService) recordError(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}

// buildPrompt assembles the context block and question into the full
// generation prompt.
func buildPrompt(question string, results []domain.ScoredChunk) string {
	entries := make([]string, len(results))
	for i := range results {
		text := results[i].Chunk.Text
		if len(text) > contextCharsPerChunk {
			text = text[:contextCharsPerChunk]
		}
		entries[i] = fmt.Sprintf("[Source %d: %s]\n%s", i+1, results[i].Chunk.Citation, text)
	}

	return fmt.Sprintf(
		"Context from course materials:\n\n%s\n\n---\n\nStudent Question: %s\n\n"+
			"Provide a helpful answer based ONLY on the context above. Remember to cite "+
			"sources and follow the academic-integrity rules for implementation questions.",
		strings.Join(entries, contextSeparator), question)
}

// dedupeCitations collapses retrieved chunks into a citation list
// deduplicated by label text, first occurrence winning.
func dedupeCitations(results []domain.ScoredChunk) []domain.Citation {
	seen := make(map[string]struct{}, len(results))
	citations := make([]domain.Citation, 0, len(results))
	for i := range results {
		label := results[i].Chunk.Citation
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		citations = append(citations, domain.Citation{
			Text:     label,
			URL:      results[i].Chunk.Locator,
			SourceID: results[i].Chunk.SourceID,
		})
	}
	return citations
}

// remapGenerationError converts backend failures into the user-facing
// error taxonomy.
func remapGenerationError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	case strings.Contains(msg, "session"):
		return fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
}
