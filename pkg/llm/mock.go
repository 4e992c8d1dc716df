// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"fmt"
	"time"
)

// MockProvider is a test provider with predictable responses. Set ChatFunc
// to script behavior; otherwise it echoes the last user message.
type MockProvider struct {
	ChatFunc func(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

func (p *MockProvider) Name() string { return "mock" }

func (p *MockProvider) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if p.ChatFunc != nil {
		return p.ChatFunc(ctx, req)
	}
	last := ""
	if len(req.Messages) > 0 {
		last = req.Messages[len(req.Messages)-1].Content
	}
	return &ChatResponse{
		Text:         fmt.Sprintf("[mock] Response to: %.50s", last),
		Model:        "mock-model",
		PromptTokens: len(last) / 4,
		OutputTokens: 20,
		Duration:     10 * time.Millisecond,
	}, nil
}
