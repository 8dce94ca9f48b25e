package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFetchFailed indicates a course document could not be fetched.
	// Per-document and recoverable: indexing skips the document.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrParseFailed indicates a course document could not be parsed.
	// Recovered the same way as ErrFetchFailed.
	ErrParseFailed = errors.New("parse failed")

	// ErrIndexNotReady indicates the content index has not completed a
	// build yet.
	ErrIndexNotReady = errors.New("index not ready")

	// ErrRebuildInProgress indicates an index rebuild is already
	// running. Rebuilds are exclusive.
	ErrRebuildInProgress = errors.New("rebuild in progress")

	// ErrBackendUnavailable indicates the generative backend is not
	// available on this machine. Fatal to tutor initialisation.
	ErrBackendUnavailable = errors.New("generative backend unavailable")

	// ErrEngineNotReady indicates the tutor was asked a question
	// before initialisation completed.
	ErrEngineNotReady = errors.New("tutor engine not ready")

	// ErrRateLimited indicates the generative backend refused the
	// request because of quota exhaustion.
	ErrRateLimited = errors.New("rate limit exceeded, wait a moment and try again")

	// ErrSessionExpired indicates the generative session is no longer
	// valid and must be reset.
	ErrSessionExpired = errors.New("session expired, reset the conversation")

	// ErrGenerationFailed indicates the generative backend failed for
	// a reason other than quota or session loss.
	ErrGenerationFailed = errors.New("failed to generate answer")
)
