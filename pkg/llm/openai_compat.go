// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// openAICompatProvider is the shared transport for backends speaking the
// OpenAI chat-completions dialect with bearer authentication: DeepSeek,
// OpenRouter, and Mistral. The three differ only in endpoint, credential,
// and extra headers, so they are thin constructors over this type.
type openAICompatProvider struct {
	name         string
	endpoint     string
	apiKey       string
	envHint      string
	extraHeaders map[string]string
	client       *http.Client
}

func newOpenAICompatProvider(name, endpoint, apiKey, envHint string, timeout time.Duration, extra map[string]string) *openAICompatProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &openAICompatProvider{
		name:         name,
		endpoint:     endpoint,
		apiKey:       apiKey,
		envHint:      envHint,
		extraHeaders: extra,
		client:       &http.Client{Timeout: timeout},
	}
}

// NewDeepSeekProvider targets the DeepSeek chat-completions API.
func NewDeepSeekProvider(apiKey string, timeout time.Duration) Provider {
	return newOpenAICompatProvider("deepseek",
		"https://api.deepseek.com/v1/chat/completions",
		apiKey, "DEEPSEEK_API_KEY", timeout, nil)
}

// NewOpenRouterProvider targets OpenRouter, which fronts the Qwen coder
// models. OpenRouter asks callers to identify themselves via Referer/Title
// headers.
func NewOpenRouterProvider(apiKey string, timeout time.Duration) Provider {
	return newOpenAICompatProvider("openrouter",
		"https://openrouter.ai/api/v1/chat/completions",
		apiKey, "OPENROUTER_API_KEY", timeout, map[string]string{
			"HTTP-Referer": "https://github.com/masonerlabs/antigravity",
			"X-Title":      "AntiGravity Setup Wizard",
		})
}

// NewMistralProvider targets the Mistral chat-completions API.
func NewMistralProvider(apiKey string, timeout time.Duration) Provider {
	return newOpenAICompatProvider("mistral",
		"https://api.mistral.ai/v1/chat/completions",
		apiKey, "MISTRAL_API_KEY", timeout, nil)
}

func (p *openAICompatProvider) Name() string { return p.name }

func (p *openAICompatProvider) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(p.apiKey) == "" {
		return nil, fmt.Errorf("%s: %w (set %s)", p.name, ErrMissingCredential, p.envHint)
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	messages := make([]Message, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, Message{Role: "system", Content: req.System})
	}
	messages = append(messages, req.Messages...)

	payload := map[string]any{
		"model":      req.Model,
		"messages":   messages,
		"max_tokens": maxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", p.name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", p.name, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	for k, v := range p.extraHeaders {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	recordRequest(p.name, time.Since(start), err)
	if err != nil {
		return nil, &APIError{Provider: p.name, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrorFromBody(p.name, resp)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Model string `json:"model"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &APIError{Provider: p.name, Message: "decode response", Err: err}
	}
	if len(result.Choices) == 0 {
		return nil, &APIError{Provider: p.name, Message: "response contained no choices"}
	}

	return &ChatResponse{
		Text:         result.Choices[0].Message.Content,
		Model:        result.Model,
		PromptTokens: result.Usage.PromptTokens,
		OutputTokens: result.Usage.CompletionTokens,
		Duration:     time.Since(start),
	}, nil
}

// apiErrorFromBody turns a non-2xx response into an APIError carrying the
// provider's own error message when the JSON body exposes one, falling back
// to the HTTP status text.
func apiErrorFromBody(provider string, resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(raw, &envelope) == nil {
		if envelope.Error.Message != "" {
			msg = envelope.Error.Message
		} else if envelope.Message != "" {
			msg = envelope.Message
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Provider: provider, StatusCode: resp.StatusCode, Message: msg}
}
