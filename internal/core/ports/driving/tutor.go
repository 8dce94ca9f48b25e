package driving

import (
	"context"

	"github.com/campus-labs/tutor-cli/internal/core/domain"
)

// TutorService answers student questions from retrieved course text.
type TutorService interface {
	// Init verifies the generative backend and opens a session with
	// the tutoring policy prompt. Returns
	// domain.ErrBackendUnavailable when the backend cannot run.
	Init(ctx context.Context) error

	// Ask answers one question. Returns domain.ErrEngineNotReady
	// before Init succeeds. Failures never produce a partial answer.
	Ask(ctx context.Context, question string) (*domain.Answer, error)

	// Reset discards the generative session, clears the conversation
	// history, and re-initialises.
	Reset(ctx context.Context) error

	// History returns the recorded conversation turns in order.
	History(ctx context.Context) ([]domain.ConversationTurn, error)

	// Stats returns a summary of the tutoring session.
	Stats(ctx context.Context) (domain.TutorStats, error)
}
