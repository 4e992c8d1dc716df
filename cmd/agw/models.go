// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/masonerlabs/antigravity/internal/output"
	"github.com/masonerlabs/antigravity/internal/ui"
	"github.com/masonerlabs/antigravity/pkg/llm"
)

// runModels executes the 'models' CLI command, listing every supported AI
// model identifier with its display name and positioning.
//
// Examples:
//
//	agw models
//	agw models --json
func runModels(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("models", flag.ExitOnError)
	jsonOutput := fs.Bool("json", globals.JSON, "Output as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: agw models [options]

Lists the supported AI model identifiers. Pass one to --model or set
default_model in ~/.agw/profile.yaml.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *jsonOutput {
		type modelJSON struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		var list []modelJSON
		for _, id := range llm.AvailableModels() {
			list = append(list, modelJSON{
				ID:          string(id),
				Name:        id.DisplayName(),
				Description: id.Description(),
			})
		}
		if err := output.JSON(list); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ui.Header("Available Models")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, id := range llm.AvailableModels() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", id, id.DisplayName(), id.Description())
	}
	_ = w.Flush()
}
