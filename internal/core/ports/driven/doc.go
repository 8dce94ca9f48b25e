// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - UnlockGate: Lists the course documents the student has unlocked
//   - ContentFetcher: Fetches raw course HTML by identifier
//   - ChunkStore: Holds the searchable chunk collection
//   - GenerativeBackend: On-device language model sessions
//   - ConversationStore: Conversation history persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - PromptStore: Operator-overridable prompt templates. When nil,
//     services fall back to their built-in prompts.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
