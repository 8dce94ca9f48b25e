// Package ollama provides a generative backend adapter using Ollama.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/campus-labs/tutor-cli/internal/core/ports/driven"
)

// Ensure Backend implements the interface.
var _ driven.GenerativeBackend = (*Backend)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "llama3.2"
	DefaultTimeout = 120 * time.Second

	// promptsPerSecond throttles generation requests so a fast typer
	// in the chat loop cannot overload a small local model.
	promptsPerSecond = 1
	promptBurst      = 2
)

// Config holds configuration for the Ollama backend.
type Config struct {
	// BaseURL is the Ollama API base URL (default: http://localhost:11434).
	BaseURL string

	// Model is the model to use (default: llama3.2).
	Model string

	// Timeout is the request timeout (default: 120s).
	Timeout time.Duration
}

// Backend provides generative sessions backed by the Ollama chat API.
type Backend struct {
	client  *http.Client
	baseURL string
	model   string
	limiter *rate.Limiter
}

// chatMessage is the Ollama chat message format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the Ollama /api/chat request format.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  *options      `json:"options,omitempty"`
}

// options holds generation parameters.
type options struct {
	Temperature float64 `json:"temperature,omitempty"`
	TopK        int     `json:"top_k,omitempty"`
}

// chatResponse is the Ollama /api/chat response format.
type chatResponse struct {
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
}

// tagsResponse is the Ollama /api/tags response format.
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// New creates a new Ollama backend.
func New(cfg Config) *Backend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Backend{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Limit(promptsPerSecond), promptBurst),
	}
}

// ModelName returns the name of the model being used.
func (b *Backend) ModelName() string {
	return b.model
}

// Availability probes the /api/tags endpoint. A reachable server with
// the configured model pulled reports ready; reachable without the
// model reports downloadable; unreachable reports unavailable.
func (b *Backend) Availability(ctx context.Context) (driven.Availability, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/api/tags", http.NoBody)
	if err != nil {
		return driven.AvailabilityUnavailable, fmt.Errorf("create request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return driven.AvailabilityUnavailable, fmt.Errorf("ollama unreachable at %s: %w", b.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return driven.AvailabilityUnavailable, fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return driven.AvailabilityUnavailable, fmt.Errorf("decode tags response: %w", err)
	}

	for _, m := range tags.Models {
		if m.Name == b.model || strings.TrimSuffix(m.Name, ":latest") == b.model {
			return driven.AvailabilityReady, nil
		}
	}

	// Server is up but the model must be pulled first.
	return driven.AvailabilityDownloadable, nil
}

// CreateSession opens a generative session. The system prompt is
// installed as the first message of every request; conversation
// context otherwise stays server-side stateless, so each Prompt call
// carries the accumulated messages.
func (b *Backend) CreateSession(_ context.Context, cfg driven.SessionConfig) (driven.GenerativeSession, error) {
	messages := []chatMessage{}
	if cfg.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: cfg.SystemPrompt})
	}

	return &session{
		backend:  b,
		cfg:      cfg,
		messages: messages,
	}, nil
}

// session is one conversation-scoped handle on the model.
type session struct {
	backend *Backend
	cfg     driven.SessionConfig

	mu        sync.Mutex
	messages  []chatMessage
	destroyed bool
}

// Prompt sends the accumulated conversation plus the new text and
// returns the generated reply. Successful exchanges are appended to
// the session transcript.
func (s *session) Prompt(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return "", fmt.Errorf("session destroyed")
	}
	msgs := make([]chatMessage, len(s.messages), len(s.messages)+1)
	copy(msgs, s.messages)
	s.mu.Unlock()

	msgs = append(msgs, chatMessage{Role: "user", Content: text})

	if err := s.backend.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("wait for rate limiter: %w", err)
	}

	reqBody := chatRequest{
		Model:    s.backend.model,
		Messages: msgs,
		Stream:   false,
		Options: &options{
			Temperature: s.cfg.Temperature,
			TopK:        s.cfg.TopK,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.backend.baseURL+"/api/chat",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.backend.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("ollama error (status %d): failed to read response", resp.StatusCode)
		}
		return "", fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	reply := chatResp.Message.Content

	s.mu.Lock()
	if !s.destroyed {
		s.messages = append(s.messages,
			chatMessage{Role: "user", Content: text},
			chatMessage{Role: "assistant", Content: reply})
	}
	s.mu.Unlock()

	return reply, nil
}

// Destroy releases the session transcript. Safe to call more than once.
func (s *session) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
	s.messages = nil
	return nil
}
