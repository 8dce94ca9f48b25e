package driven

// PromptStore provides access to prompt templates. Implementations may
// load prompts from files or embed them in the binary. The store is
// optional: consumers fall back to built-in prompts when it is nil or
// a named prompt is missing.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
const (
	// PromptTutorSystem is the tutoring policy preamble installed as
	// the generative session's system instruction. No placeholders.
	PromptTutorSystem = "tutor_system"
)
