// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/internal/output"
	"github.com/masonerlabs/antigravity/internal/ui"
	"github.com/masonerlabs/antigravity/pkg/wizard"
)

// runSetup executes the 'setup' CLI command, generating a full workstation
// setup guide for the profile's environment. Any bootstrap scripts the
// response names are extracted and can be saved with --out.
//
// Flags:
//   - --out: Directory to save extracted scripts (default: print only)
//   - --json: Output markdown and scripts as JSON
//
// Examples:
//
//	agw setup
//	agw setup --out ./scripts
//	agw --model deepseek-coder setup
func runSetup(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("setup", flag.ExitOnError)
	outDir := fs.String("out", "", "Directory to save extracted scripts")
	jsonOutput := fs.Bool("json", globals.JSON, "Output as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: agw setup [options]

Generates a step-by-step workstation setup guide from your profile:
drive mapping, development tools, folder structure, and a bootstrap
script you can run directly.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	gen, cfg, model := loadGenerator(globals)

	var content *wizard.GeneratedContent
	var genErr error
	withSpinner(NewProgressConfig(globals), "Generating setup guide...", func() {
		content, genErr = gen.Generate(context.Background(), wizard.Request{
			Mode:    wizard.ModeSetupGuide,
			Model:   model,
			Profile: cfg.Profile,
		})
	})
	if genErr != nil {
		errors.FatalError(genErr, *jsonOutput)
	}

	emitContent(content, *outDir, *jsonOutput)
}

// emitContent renders a generation result: JSON when requested, otherwise
// markdown to stdout plus optional script files.
func emitContent(content *wizard.GeneratedContent, outDir string, jsonOutput bool) {
	if jsonOutput {
		if err := output.JSON(content); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(content.Markdown)

	if outDir != "" {
		if err := saveScripts(outDir, content.Scripts); err != nil {
			errors.FatalError(errors.NewInternalError(
				"Failed to save scripts",
				err.Error(),
				"Check permissions on the output directory",
				err,
			), false)
		}
		if len(content.Scripts) == 0 {
			ui.Warning("Response contained no named scripts")
		}
	}
}
