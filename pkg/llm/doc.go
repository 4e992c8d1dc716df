// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

// Package llm provides a unified chat-completion interface over the AI
// providers the wizard can target: Google Gemini, Anthropic, DeepSeek,
// OpenRouter (Qwen), and Mistral.
//
// Each provider owns its endpoint, authentication scheme, payload shape,
// and response envelope; everything above the transport is shared. A
// Registry maps the closed set of model identifiers onto providers, so a
// caller holds exactly one entry point:
//
//	reg := llm.NewRegistry(llm.Credentials{Anthropic: key}, llm.Options{})
//	provider, wireModel, err := reg.Route(llm.ModelClaudeSonnet)
//	resp, err := provider.Chat(ctx, llm.ChatRequest{
//	    Model:  wireModel,
//	    System: "You are a technical writer.",
//	    Messages: []llm.Message{{Role: "user", Content: "Write a README."}},
//	})
//
// API keys are injected through Credentials; the environment is only a
// constructor-time fallback. Every call carries a context and an explicit
// timeout, makes exactly one attempt, and reports failures as typed errors
// (ErrMissingCredential, ErrUnknownModel, *APIError) so callers can tell a
// configuration problem from a transport one.
//
// MockProvider supports tests and offline development.
package llm
