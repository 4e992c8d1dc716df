// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package llm

import (
	"fmt"
	"os"
	"time"
)

// ModelID is one of the closed set of model identifiers the wizard
// supports. The id is user-facing; the wire-level model name a provider
// expects may differ (see Route).
type ModelID string

const (
	ModelGeminiFlash      ModelID = "gemini-2.5-flash"
	ModelClaudeSonnet     ModelID = "claude-3-5-sonnet-20241022"
	ModelClaudeOpus       ModelID = "claude-3-opus-20240229"
	ModelDeepSeekCoder    ModelID = "deepseek-coder"
	ModelQwenCoder        ModelID = "qwen-2.5-coder-32b"
	ModelMistralCodestral ModelID = "mistral-codestral"
)

// DefaultModel is used when neither the profile nor the command line picks
// one.
const DefaultModel = ModelGeminiFlash

// AvailableModels returns every supported model identifier, in display
// order.
func AvailableModels() []ModelID {
	return []ModelID{
		ModelGeminiFlash,
		ModelClaudeSonnet,
		ModelClaudeOpus,
		ModelDeepSeekCoder,
		ModelQwenCoder,
		ModelMistralCodestral,
	}
}

// DisplayName returns a human-readable name for the model.
func (id ModelID) DisplayName() string {
	switch id {
	case ModelGeminiFlash:
		return "Google Gemini 2.5 Flash"
	case ModelClaudeSonnet:
		return "Claude 3.5 Sonnet"
	case ModelClaudeOpus:
		return "Claude 3 Opus"
	case ModelDeepSeekCoder:
		return "DeepSeek Coder"
	case ModelQwenCoder:
		return "Qwen 2.5 Coder 32B"
	case ModelMistralCodestral:
		return "Mistral Codestral"
	default:
		return string(id)
	}
}

// Description returns a short positioning blurb for the model.
func (id ModelID) Description() string {
	switch id {
	case ModelGeminiFlash:
		return "Fast and free - Best for quick responses and general tasks"
	case ModelClaudeSonnet:
		return "Balanced performance - Great for most development tasks"
	case ModelClaudeOpus:
		return "Highest quality - Best for complex reasoning and critical tasks"
	case ModelDeepSeekCoder:
		return "Code specialist - Excellent for coding tasks, very affordable"
	case ModelQwenCoder:
		return "Open-source coder - Free via OpenRouter, great for code generation"
	case ModelMistralCodestral:
		return "Fast code generation - Mid-tier pricing, good balance"
	default:
		return ""
	}
}

// Credentials holds the per-backend API keys. Empty fields fall back to the
// corresponding environment variable when the registry is built; after that
// the keys are fixed, so tests can substitute fakes without touching the
// process environment.
type Credentials struct {
	Gemini     string `yaml:"gemini_api_key"`
	Anthropic  string `yaml:"anthropic_api_key"`
	DeepSeek   string `yaml:"deepseek_api_key"`
	OpenRouter string `yaml:"openrouter_api_key"`
	Mistral    string `yaml:"mistral_api_key"`
}

// CredentialsFromEnv reads every backend key from the environment.
func CredentialsFromEnv() Credentials {
	return Credentials{
		Gemini:     os.Getenv("GEMINI_API_KEY"),
		Anthropic:  os.Getenv("ANTHROPIC_API_KEY"),
		DeepSeek:   os.Getenv("DEEPSEEK_API_KEY"),
		OpenRouter: os.Getenv("OPENROUTER_API_KEY"),
		Mistral:    os.Getenv("MISTRAL_API_KEY"),
	}
}

func (c Credentials) withEnvFallback() Credentials {
	env := CredentialsFromEnv()
	if c.Gemini == "" {
		c.Gemini = env.Gemini
	}
	if c.Anthropic == "" {
		c.Anthropic = env.Anthropic
	}
	if c.DeepSeek == "" {
		c.DeepSeek = env.DeepSeek
	}
	if c.OpenRouter == "" {
		c.OpenRouter = env.OpenRouter
	}
	if c.Mistral == "" {
		c.Mistral = env.Mistral
	}
	return c
}

// Options tunes registry-wide transport behavior.
type Options struct {
	// Timeout bounds each provider call. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Registry maps model identifiers onto provider adapters. Providers are
// constructed once, up front; routing is a pure lookup.
type Registry struct {
	gemini     Provider
	anthropic  Provider
	deepseek   Provider
	openrouter Provider
	mistral    Provider
}

// NewRegistry builds the provider set from credentials (with environment
// fallback for empty fields) and shared options.
func NewRegistry(creds Credentials, opts Options) *Registry {
	creds = creds.withEnvFallback()
	return &Registry{
		gemini:     NewGeminiProvider(creds.Gemini, opts.Timeout),
		anthropic:  NewAnthropicProvider(creds.Anthropic, opts.Timeout),
		deepseek:   NewDeepSeekProvider(creds.DeepSeek, opts.Timeout),
		openrouter: NewOpenRouterProvider(creds.OpenRouter, opts.Timeout),
		mistral:    NewMistralProvider(creds.Mistral, opts.Timeout),
	}
}

// Route returns the provider serving a model id together with the
// wire-level model name to send. Unknown ids yield ErrUnknownModel; Route
// never panics.
func (r *Registry) Route(id ModelID) (Provider, string, error) {
	switch id {
	case ModelGeminiFlash:
		return r.gemini, "gemini-2.5-flash", nil
	case ModelClaudeSonnet:
		return r.anthropic, "claude-3-5-sonnet-20241022", nil
	case ModelClaudeOpus:
		return r.anthropic, "claude-3-opus-20240229", nil
	case ModelDeepSeekCoder:
		return r.deepseek, "deepseek-coder", nil
	case ModelQwenCoder:
		return r.openrouter, "qwen/qwen-2.5-coder-32b-instruct", nil
	case ModelMistralCodestral:
		return r.mistral, "codestral-latest", nil
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownModel, id)
	}
}
