// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/pkg/llm"
)

// stubRouter routes every known model to a single provider. Unknown models
// mirror the registry's behavior.
type stubRouter struct {
	provider llm.Provider
}

func (r *stubRouter) Route(id llm.ModelID) (llm.Provider, string, error) {
	for _, known := range llm.AvailableModels() {
		if id == known {
			return r.provider, string(id), nil
		}
	}
	return nil, "", fmt.Errorf("%w: %s", llm.ErrUnknownModel, id)
}

func respondWith(text string) *llm.MockProvider {
	return &llm.MockProvider{
		ChatFunc: func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
			return &llm.ChatResponse{Text: text, Model: req.Model}, nil
		},
	}
}

func TestGenerator_SetupExtractsScripts(t *testing.T) {
	reply := "Guide text.\n\n```powershell\n# FILENAME: bootstrap_antigravity.ps1\ngit init\n```\n"
	gen := NewGenerator(&stubRouter{provider: respondWith(reply)})

	content, err := gen.Generate(context.Background(), Request{
		Mode:    ModeSetupGuide,
		Model:   llm.ModelGeminiFlash,
		Profile: testProfile,
	})
	require.NoError(t, err)

	assert.Equal(t, reply, content.Markdown)
	require.Len(t, content.Scripts, 1)
	assert.Equal(t, "bootstrap_antigravity.ps1", content.Scripts[0].Filename)
}

func TestGenerator_SendsPersonaAndPrompt(t *testing.T) {
	var got llm.ChatRequest
	provider := &llm.MockProvider{
		ChatFunc: func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
			got = req
			return &llm.ChatResponse{Text: "ok"}, nil
		},
	}
	gen := NewGenerator(&stubRouter{provider: provider})

	_, err := gen.Generate(context.Background(), Request{
		Mode:    ModeDriveMapping,
		Model:   llm.ModelDeepSeekCoder,
		Profile: testProfile,
	})
	require.NoError(t, err)

	assert.Equal(t, SystemInstruction(ModeDriveMapping), got.System)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "Ada")
	assert.False(t, got.JSONOnly)
}

func TestGenerator_BlueprintVerbatim(t *testing.T) {
	reply := "```json\n" + blueprintJSON + "\n```"
	var got llm.ChatRequest
	provider := &llm.MockProvider{
		ChatFunc: func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
			got = req
			return &llm.ChatResponse{Text: reply}, nil
		},
	}
	gen := NewGenerator(&stubRouter{provider: provider})

	state := &ArchitectState{Step: StepInterview, RawIdea: "idea"}
	content, err := gen.Generate(context.Background(), Request{
		Mode:    ModeArchitectBlueprint,
		Model:   llm.ModelClaudeSonnet,
		Profile: testProfile,
		State:   state,
	})
	require.NoError(t, err)

	assert.Equal(t, reply, content.Markdown, "blueprint replies pass through untouched")
	assert.Nil(t, content.Scripts, "no extraction on blueprint replies")
	assert.True(t, got.JSONOnly)
}

func TestGenerator_UnknownModel(t *testing.T) {
	gen := NewGenerator(&stubRouter{provider: respondWith("unused")})

	_, err := gen.Generate(context.Background(), Request{
		Mode:    ModeSetupGuide,
		Model:   "gpt-99-ultra",
		Profile: testProfile,
	})
	require.Error(t, err)

	var ue *errors.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errors.ExitUnsupported, ue.ExitCode)
}

func TestGenerator_MissingCredential(t *testing.T) {
	provider := &llm.MockProvider{
		ChatFunc: func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
			return nil, fmt.Errorf("mock: %w (set MOCK_API_KEY)", llm.ErrMissingCredential)
		},
	}
	gen := NewGenerator(&stubRouter{provider: provider})

	_, err := gen.Generate(context.Background(), Request{
		Mode:    ModeSetupGuide,
		Model:   llm.ModelMistralCodestral,
		Profile: testProfile,
	})
	require.Error(t, err)

	var ue *errors.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errors.ExitConfig, ue.ExitCode)
	assert.Contains(t, ue.Message, "API key")
}

func TestGenerator_APIErrorBecomesNetworkError(t *testing.T) {
	provider := &llm.MockProvider{
		ChatFunc: func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
			return nil, &llm.APIError{Provider: "mock", StatusCode: 500, Message: "boom"}
		},
	}
	gen := NewGenerator(&stubRouter{provider: provider})

	_, err := gen.Generate(context.Background(), Request{
		Mode:    ModeSetupGuide,
		Model:   llm.ModelGeminiFlash,
		Profile: testProfile,
	})
	require.Error(t, err)

	var ue *errors.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errors.ExitNetwork, ue.ExitCode)
	assert.Contains(t, ue.Cause, "boom")
}

func TestGenerateRendered_NeverFails(t *testing.T) {
	t.Run("credential failure renders as error markdown", func(t *testing.T) {
		provider := &llm.MockProvider{
			ChatFunc: func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
				return nil, fmt.Errorf("mock: %w (set MOCK_API_KEY)", llm.ErrMissingCredential)
			},
		}
		gen := NewGenerator(&stubRouter{provider: provider})

		content := gen.GenerateRendered(context.Background(), Request{
			Mode:    ModeSetupGuide,
			Model:   llm.ModelGeminiFlash,
			Profile: testProfile,
		})
		require.NotNil(t, content)
		assert.Contains(t, content.Markdown, "### Error")
		assert.Contains(t, content.Markdown, "API key")
	})

	t.Run("unknown model renders as error markdown", func(t *testing.T) {
		gen := NewGenerator(&stubRouter{provider: respondWith("unused")})

		content := gen.GenerateRendered(context.Background(), Request{
			Mode:    ModeSetupGuide,
			Model:   "gpt-99-ultra",
			Profile: testProfile,
		})
		assert.Contains(t, content.Markdown, "### Error")
	})

	t.Run("success passes through", func(t *testing.T) {
		gen := NewGenerator(&stubRouter{provider: respondWith("all good")})

		content := gen.GenerateRendered(context.Background(), Request{
			Mode:    ModeSetupGuide,
			Model:   llm.ModelGeminiFlash,
			Profile: testProfile,
		})
		assert.Equal(t, "all good", content.Markdown)
	})
}

func TestGenerator_HeuristicSlugHint(t *testing.T) {
	reply := "```powershell\nNew-Item -ItemType Directory x\n```"
	gen := NewGenerator(&stubRouter{provider: respondWith(reply)})
	gen.Heuristic = true

	content, err := gen.Generate(context.Background(), Request{
		Mode:    ModeProjectScaffold,
		Model:   llm.ModelGeminiFlash,
		Profile: testProfile,
		Project: &ProjectConfig{ProjectName: "Sync Tool", ProjectSlug: "sync-tool"},
	})
	require.NoError(t, err)
	require.Len(t, content.Scripts, 1)
	assert.Equal(t, "init_sync-tool.ps1", content.Scripts[0].Filename)
}
