// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/pkg/llm"
)

// ModelRouter resolves a model identifier to a provider adapter and the
// wire-level model name. Satisfied by *llm.Registry.
type ModelRouter interface {
	Route(id llm.ModelID) (llm.Provider, string, error)
}

// Generator runs the full generation pipeline for one request: build the
// prompt, pick the persona, route to a provider, and parse the response
// into markdown plus extracted scripts.
type Generator struct {
	router ModelRouter

	// Heuristic enables filename guessing for fenced blocks that carry no
	// FILENAME marker. Off by default; the profile file can opt in.
	Heuristic bool
}

// NewGenerator wraps a model router.
func NewGenerator(router ModelRouter) *Generator {
	return &Generator{router: router}
}

// Request is one generation call.
type Request struct {
	Mode    GeneratorMode
	Model   llm.ModelID
	Profile UserProfile

	// Project is required for README_GEN and PROJECT_SCAFFOLD.
	Project *ProjectConfig

	// State is required for the architect modes.
	State *ArchitectState
}

// Generate runs the pipeline and returns the parsed result. All failures
// come back as *errors.UserError with an exit code matching the failure
// class, so the CLI can render or JSON-encode them uniformly.
//
// ARCHITECT_BLUEPRINT responses are returned verbatim with no script
// extraction; the caller feeds them to ParseBlueprint via the session.
func (g *Generator) Generate(ctx context.Context, req Request) (*GeneratedContent, error) {
	prompt, err := BuildPrompt(req.Mode, req.Profile, req.Project, req.State)
	if err != nil {
		return nil, err
	}

	provider, wireModel, err := g.router.Route(req.Model)
	if err != nil {
		return nil, errors.NewUnsupportedError(
			fmt.Sprintf("Model %q is not supported", req.Model),
			"The model identifier is outside the supported set",
			"Run 'agw models' to list valid model identifiers",
		)
	}

	resp, err := provider.Chat(ctx, llm.ChatRequest{
		Model:    wireModel,
		System:   SystemInstruction(req.Mode),
		Messages: []llm.Message{{Role: "user", Content: prompt}},
		JSONOnly: req.Mode == ModeArchitectBlueprint,
	})
	if err != nil {
		return nil, classifyProviderError(provider.Name(), err)
	}

	content := &GeneratedContent{Markdown: resp.Text}
	if req.Mode != ModeArchitectBlueprint {
		content.Scripts = ExtractScripts(resp.Text, ExtractOptions{
			Heuristic: g.Heuristic,
			SlugHint:  g.slugHint(req),
		})
	}
	return content, nil
}

// GenerateRendered is the render-safe variant: it never returns an error.
// Failures become a GeneratedContent whose markdown is an '### Error'
// section describing what went wrong, so interactive flows always have
// something to display.
func (g *Generator) GenerateRendered(ctx context.Context, req Request) *GeneratedContent {
	content, err := g.Generate(ctx, req)
	if err == nil {
		return content
	}

	var ue *errors.UserError
	if stderrors.As(err, &ue) {
		md := fmt.Sprintf("### Error\n\n%s", ue.Message)
		if ue.Cause != "" {
			md += fmt.Sprintf("\n\n%s", ue.Cause)
		}
		if ue.Fix != "" {
			md += fmt.Sprintf("\n\n**Fix:** %s", ue.Fix)
		}
		return &GeneratedContent{Markdown: md}
	}
	return &GeneratedContent{Markdown: fmt.Sprintf("### Error\n\n%v", err)}
}

func (g *Generator) slugHint(req Request) string {
	if req.Project != nil && req.Project.ProjectSlug != "" {
		return req.Project.ProjectSlug
	}
	if req.State != nil && req.State.Blueprint != nil {
		return req.State.Blueprint.Slug()
	}
	return ""
}

// classifyProviderError maps provider failures onto the CLI error contract.
func classifyProviderError(provider string, err error) *errors.UserError {
	switch {
	case stderrors.Is(err, llm.ErrMissingCredential):
		return errors.NewConfigError(
			fmt.Sprintf("No API key configured for %s", provider),
			err.Error(),
			"Add the key to ~/.agw/profile.yaml or export the environment variable named in the message",
			err,
		)
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.NewNetworkError(
			fmt.Sprintf("Request to %s timed out", provider),
			err.Error(),
			"Retry, or raise the timeout with --timeout",
			err,
		)
	default:
		var apiErr *llm.APIError
		if stderrors.As(err, &apiErr) {
			return errors.NewNetworkError(
				fmt.Sprintf("Request to %s failed", provider),
				apiErr.Error(),
				"Check connectivity and API key validity, then retry",
				err,
			)
		}
		return errors.NewNetworkError(
			fmt.Sprintf("Request to %s failed", provider),
			err.Error(),
			"Check connectivity and retry",
			err,
		)
	}
}
