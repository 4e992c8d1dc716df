// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/pkg/wizard"
)

// runDrive executes the 'drive' CLI command, generating a guide for
// mounting Google Drive as a local drive letter on Windows.
//
// Flags:
//   - --out: Directory to save the guide as drive_mapping.md
//   - --json: Output as JSON
//
// Examples:
//
//	agw drive
//	agw drive --out ./docs
func runDrive(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("drive", flag.ExitOnError)
	outDir := fs.String("out", "", "Directory to save the guide as drive_mapping.md")
	jsonOutput := fs.Bool("json", globals.JSON, "Output as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: agw drive [options]

Generates a step-by-step guide for installing Google Drive for
Desktop and mounting it as a streamed local drive.

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
	withSpinner(NewProgressConfig(globals), "Generating drive mapping guide...", func() {
		content, genErr = gen.Generate(context.Background(), wizard.Request{
			Mode:    wizard.ModeDriveMapping,
			Model:   model,
			Profile: cfg.Profile,
		})
	})
	if genErr != nil {
		errors.FatalError(genErr, *jsonOutput)
	}

	if *outDir != "" && !*jsonOutput {
		if err := saveMarkdown(*outDir, "drive_mapping.md", content.Markdown); err != nil {
			errors.FatalError(errors.NewInternalError(
				"Failed to save guide", err.Error(), "Check permissions on the output directory", err,
			), false)
		}
	}
	emitContent(content, "", *jsonOutput)
}
