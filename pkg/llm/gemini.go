// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "google.golang.org/genai"
)

// defaultThinkingBudget caps Gemini's internal reasoning tokens. Guides and
// scripts do not benefit from long deliberation.
const defaultThinkingBudget = 1024

// geminiProvider wraps the official genai client. It is the only backend
// reached through an SDK rather than raw HTTP; the SDK owns endpoint,
// authentication, and envelope details, so this adapter only maps the request
// shape and normalizes the reply.
type geminiProvider struct {
	apiKey  string
	timeout time.Duration
}

// NewGeminiProvider targets the Gemini API via the official Go SDK.
func NewGeminiProvider(apiKey string, timeout time.Duration) Provider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &geminiProvider{apiKey: apiKey, timeout: timeout}
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return nil, fmt.Errorf("gemini: %w (set GEMINI_API_KEY)", ErrMissingCredential)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &APIError{Provider: "gemini", Message: "create client", Err: err}
	}

	cfg := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(defaultThinkingBudget))},
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if req.JSONOnly {
		cfg.ResponseMIMEType = "application/json"
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	} else {
		cfg.MaxOutputTokens = int32(DefaultMaxTokens)
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	start := time.Now()
	resp, err := cli.Models.GenerateContent(ctx, req.Model, contents, cfg)
	recordRequest("gemini", time.Since(start), err)
	if err != nil {
		return nil, &APIError{Provider: "gemini", Message: "request failed", Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &APIError{Provider: "gemini", Message: "response contained no candidates"}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	out := &ChatResponse{
		Text:     text.String(),
		Model:    req.Model,
		Duration: time.Since(start),
	}
	if resp.UsageMetadata != nil {
		out.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		out.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return out, nil
}
