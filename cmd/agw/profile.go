// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/masonerlabs/antigravity/internal/bootstrap"
	"github.com/masonerlabs/antigravity/internal/config"
	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/internal/output"
	"github.com/masonerlabs/antigravity/internal/ui"
)

// runProfile executes the 'profile' CLI command and its subcommands.
//
// Subcommands:
//   - init: create ~/.agw/profile.yaml with defaults (idempotent)
//   - show: print the current profile
//   - path: print the profile file path
//
// Examples:
//
//	agw profile init
//	agw profile show --json
//	$EDITOR "$(agw profile path)"
func runProfile(args []string, globals GlobalFlags) {
	if len(args) == 0 {
		profileUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "init":
		runProfileInit(args[1:], globals)
	case "show":
		runProfileShow(args[1:], globals)
	case "path":
		path, err := config.Path()
		if err != nil {
			errors.FatalError(err, globals.JSON)
		}
		fmt.Println(path)
	default:
		fmt.Fprintf(os.Stderr, "Unknown profile subcommand: %s\n", args[0])
		profileUsage()
		os.Exit(1)
	}
}

func profileUsage() {
	fmt.Fprintf(os.Stderr, `Usage: agw profile <subcommand>

Subcommands:
  init   Create ~/.agw/profile.yaml with defaults (never overwrites)
  show   Print the current profile
  path   Print the profile file path

The profile holds your identity, storage paths, API keys, and the
default model. Edit it with any text editor after 'init'.
`)
}

func runProfileInit(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("profile init", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	info, err := bootstrap.InitProfile(nil)
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}

	if globals.JSON {
		_ = output.JSON(info)
		return
	}

	if info.Created {
		ui.Successf("Created %s", info.Path)
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Printf("  1. Edit %s with your details and API keys\n", info.Path)
		fmt.Println("  2. Run 'agw models' to pick a default model")
		fmt.Println("  3. Run 'agw setup' to generate your first guide")
	} else {
		ui.Infof("Profile already exists at %s", info.Path)
	}
}

func runProfileShow(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("profile show", flag.ExitOnError)
	jsonOutput := fs.Bool("json", globals.JSON, "Output as JSON")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		errors.FatalError(err, *jsonOutput)
	}

	if *jsonOutput {
		// Credentials stay out of show output.
		_ = output.JSON(struct {
			Profile      any    `json:"profile"`
			DefaultModel string `json:"default_model"`
		}{cfg.Profile, string(cfg.DefaultModel)})
		return
	}

	ui.Header("Profile")
	fmt.Printf("%s %s\n", ui.Label("Name:"), cfg.Profile.Name)
	fmt.Printf("%s %s\n", ui.Label("Username:"), cfg.Profile.Username)
	fmt.Printf("%s %s\n", ui.Label("Email:"), cfg.Profile.Email)
	fmt.Printf("%s %s\n", ui.Label("Google Drive:"), ui.DimText(cfg.Profile.GoogleDrivePath))
	fmt.Printf("%s %s\n", ui.Label("OneDrive:"), ui.DimText(cfg.Profile.OneDrivePath))
	fmt.Printf("%s %s\n", ui.Label("GitHub:"), ui.DimText(cfg.Profile.GitHubPath))
	if cfg.Profile.HostingHostname != "" {
		fmt.Printf("%s %s@%s\n", ui.Label("Hosting:"), cfg.Profile.HostingUsername, cfg.Profile.HostingHostname)
	}
	fmt.Printf("%s %s\n", ui.Label("Default model:"), cfg.DefaultModel)
}
