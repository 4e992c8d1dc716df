// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/pkg/wizard"
)

// runReadme executes the 'readme' CLI command, generating a README.md for a
// named project with tech stack, setup instructions, and author contact
// details pulled from the profile.
//
// Flags:
//   - --name: Project name (required)
//   - --desc: Project description
//   - --slug: Project slug (default: derived from name)
//   - --location: Storage location: OneDrive, GoogleDrive, or Both
//   - --tools: Comma-separated tool list (default: standard catalogue)
//   - --out: Directory to save README.md
//
// Examples:
//
//	agw readme --name "City Sync Dashboard" --desc "Syncs city data"
//	agw readme --name "Sync Tool" --tools "Node.js,Docker" --out .
func runReadme(args []string, globals GlobalFlags) {
	project, outDir, jsonOutput := parseProjectFlags("readme", args, globals, `Usage: agw readme [options]

Generates a README.md for a project, including the selected tech
stack, setup instructions, and your contact details.

Options:
`)

	gen, cfg, model := loadGenerator(globals)

	var content *wizard.GeneratedContent
	var genErr error
	withSpinner(NewProgressConfig(globals), "Generating README...", func() {
		content, genErr = gen.Generate(context.Background(), wizard.Request{
			Mode:    wizard.ModeReadmeGen,
			Model:   model,
			Profile: cfg.Profile,
			Project: project,
		})
	})
	if genErr != nil {
		errors.FatalError(genErr, jsonOutput)
	}

	if outDir != "" && !jsonOutput {
		if err := saveMarkdown(outDir, "README.md", content.Markdown); err != nil {
			errors.FatalError(errors.NewInternalError(
				"Failed to save README", err.Error(), "Check permissions on the output directory", err,
			), false)
		}
	}
	emitContent(content, "", jsonOutput)
}

// parseProjectFlags parses the shared project flag set used by the readme
// and scaffold commands. It exits on a missing --name.
func parseProjectFlags(cmd string, args []string, globals GlobalFlags, usage string) (*wizard.ProjectConfig, string, bool) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	name := fs.String("name", "", "Project name (required)")
	desc := fs.String("desc", "", "Project description")
	slug := fs.String("slug", "", "Project slug (default: derived from name)")
	location := fs.String("location", string(wizard.LocationOneDrive), "Storage location: OneDrive, GoogleDrive, or Both")
	tools := fs.StringSlice("tools", wizard.DefaultTools, "Tools to include")
	outDir := fs.String("out", "", "Directory to save the generated file")
	jsonOutput := fs.Bool("json", globals.JSON, "Output as JSON")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if strings.TrimSpace(*name) == "" {
		fmt.Fprintf(os.Stderr, "Error: --name is required\n")
		fs.Usage()
		os.Exit(errors.ExitInput)
	}
	if *slug == "" {
		*slug = wizard.Slugify(*name)
	}

	return &wizard.ProjectConfig{
		ProjectName: *name,
		ProjectSlug: *slug,
		Location:    wizard.StorageLocation(*location),
		Tools:       *tools,
		Description: *desc,
	}, *outDir, *jsonOutput
}
