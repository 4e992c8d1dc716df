// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/pkg/wizard"
)

// runScaffold executes the 'scaffold' CLI command, generating a PowerShell
// script that creates a project's folder structure and git repository.
//
// Shares its flag set with 'readme'; see parseProjectFlags.
//
// Examples:
//
//	agw scaffold --name "Sync Tool" --out ./scripts
//	agw scaffold --name "Sync Tool" --location Both --tools "Node.js,Docker"
func runScaffold(args []string, globals GlobalFlags) {
	project, outDir, jsonOutput := parseProjectFlags("scaffold", args, globals, `Usage: agw scaffold [options]

Generates a single PowerShell scaffold script that creates the
project folder in the chosen storage location, initializes git, and
stubs the starter files for the selected tools.

Options:
`)

	gen, cfg, model := loadGenerator(globals)

	var content *wizard.GeneratedContent
	var genErr error
	withSpinner(NewProgressConfig(globals), "Generating scaffold script...", func() {
		content, genErr = gen.Generate(context.Background(), wizard.Request{
			Mode:    wizard.ModeProjectScaffold,
			Model:   model,
			Profile: cfg.Profile,
			Project: project,
		})
	})
	if genErr != nil {
		errors.FatalError(genErr, jsonOutput)
	}

	emitContent(content, outDir, jsonOutput)
}
