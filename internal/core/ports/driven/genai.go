package driven

import "context"

// Availability describes whether the generative backend can serve
// requests on this machine.
type Availability string

const (
	// AvailabilityUnavailable means the backend cannot run here.
	AvailabilityUnavailable Availability = "unavailable"

	// AvailabilityDownloadable means the backend is present but the
	// model must be downloaded before first use. Session creation may
	// block until the download completes.
	AvailabilityDownloadable Availability = "downloadable"

	// AvailabilityReady means the backend can serve requests now.
	AvailabilityReady Availability = "ready"
)

// SessionConfig configures a generative session. The tutor service
// fixes these values at initialisation; they are not negotiable at
// call sites.
type SessionConfig struct {
	// SystemPrompt is the policy preamble installed as the session's
	// system instruction.
	SystemPrompt string

	// Temperature controls randomness. The tutor uses a low value for
	// a factual, consistent tone.
	Temperature float64

	// TopK narrows candidate sampling.
	TopK int
}

// GenerativeBackend provides access to the on-device language model.
//
// Implementations may include:
//   - Ollama (local models)
//   - LM Studio (local inference server)
type GenerativeBackend interface {
	// Availability probes whether the backend can serve requests.
	Availability(ctx context.Context) (Availability, error)

	// CreateSession opens a generative session with the given
	// configuration. When Availability reported downloadable, this
	// may block until the model is ready.
	CreateSession(ctx context.Context, cfg SessionConfig) (GenerativeSession, error)
}

// GenerativeSession is one conversation-scoped handle on the model.
type GenerativeSession interface {
	// Prompt sends a full prompt and returns the generated text.
	Prompt(ctx context.Context, text string) (string, error)

	// Destroy releases the session. Safe to call more than once.
	Destroy() error
}
