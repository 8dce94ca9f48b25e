// Package memory provides in-memory storage adapters. The chunk store
// is the canonical index storage (the index is rebuilt from source on
// every run); the conversation store backs tests and ephemeral chat
// sessions.
package memory
