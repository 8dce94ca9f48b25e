package tui

import (
	"github.com/campus-labs/tutor-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the chat
// view. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Tutor answers student questions.
	Tutor driving.TutorService

	// Index reports index readiness for the status line.
	Index driving.IndexService
}
