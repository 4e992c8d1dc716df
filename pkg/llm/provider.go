// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultTimeout bounds a single provider call when no explicit timeout is
// configured. Generation calls are long; transport defaults without any
// deadline are not acceptable.
const DefaultTimeout = 120 * time.Second

// DefaultMaxTokens is the completion budget sent with every request.
const DefaultMaxTokens = 4096

// Provider is the uniform chat-completion contract every backend
// implements.
type Provider interface {
	// Chat performs one completion call. It makes exactly one network
	// attempt and honors ctx cancellation and the provider timeout.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// Name returns the provider identifier ("gemini", "anthropic", ...).
	Name() string
}

// Message is one chat message. Role is "system", "user", or "assistant";
// providers that carry the system text out-of-band lift it from ChatRequest
// themselves.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest describes one completion call.
type ChatRequest struct {
	// Model is the provider's wire-level model name.
	Model string

	// System is the persona/system instruction. May be empty.
	System string

	// Messages is the conversation, oldest first. The wizard sends a
	// single user message; history is serialized into the prompt text.
	Messages []Message

	// MaxTokens caps the completion size. Zero means DefaultMaxTokens.
	MaxTokens int

	// JSONOnly asks the provider for a JSON-only response where the API
	// supports it (Gemini response MIME type). Other providers rely on the
	// prompt alone.
	JSONOnly bool
}

// ChatResponse is the normalized result of a completion call.
type ChatResponse struct {
	Text         string
	Model        string
	PromptTokens int
	OutputTokens int
	Duration     time.Duration
}

// ErrMissingCredential reports that a provider was invoked without an API
// key. It is returned before any network I/O is attempted.
var ErrMissingCredential = errors.New("API key not configured")

// ErrUnknownModel reports a model identifier outside the supported set.
var ErrUnknownModel = errors.New("unsupported model")

// APIError is a failed provider call: a non-2xx response or a transport
// failure. Message carries the provider's own error text when the error
// body exposed one, else the HTTP status.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }
