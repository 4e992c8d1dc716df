// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

// Package main implements the agw CLI, a personal environment and project
// wizard that generates setup guides, READMEs, scaffold scripts, and full
// project bootstraps through conversational AI models.
//
// Usage:
//
//	agw profile init              Create ~/.agw/profile.yaml
//	agw setup                     Generate a workstation setup guide
//	agw drive                     Generate a Google Drive mapping guide
//	agw readme --name <project>   Generate a project README
//	agw scaffold --name <project> Generate a scaffold script
//	agw architect "<idea>"        Interview, blueprint, and fabricate a project
//	agw models                    List supported AI models
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/masonerlabs/antigravity/internal/config"
	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/internal/ui"
	"github.com/masonerlabs/antigravity/pkg/llm"
	"github.com/masonerlabs/antigravity/pkg/wizard"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags holds options shared by every command.
type GlobalFlags struct {
	// JSON switches machine-readable output; it implies Quiet.
	JSON bool

	// Quiet suppresses progress display.
	Quiet bool

	// NoColor disables colored output.
	NoColor bool

	// Model overrides the profile's default model.
	Model string

	// Timeout bounds each provider call.
	Timeout time.Duration
}

// main is the entry point for the agw CLI.
//
// It parses global flags and dispatches to command handlers.
func main() {
	var globals GlobalFlags
	var showVersion bool

	flag.BoolVar(&showVersion, "version", false, "Show version and exit")
	flag.BoolVar(&globals.JSON, "json", false, "Output as JSON")
	flag.BoolVar(&globals.Quiet, "q", false, "Suppress progress output")
	flag.BoolVar(&globals.NoColor, "no-color", false, "Disable colored output")
	flag.StringVar(&globals.Model, "model", "", "AI model to use (default: profile setting)")
	flag.DurationVar(&globals.Timeout, "timeout", llm.DefaultTimeout, "Per-request timeout")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `agw - Antigravity Wizard

agw turns a user profile and a project idea into working environment
setup: drive mapping guides, setup guides, READMEs, scaffold scripts,
and fully fabricated project starters, generated by the AI model of
your choice.

Usage:
  agw [global options] <command> [options]

Commands:
  profile    Manage the user profile (~/.agw/profile.yaml)
  setup      Generate a workstation setup guide
  drive      Generate a Google Drive mapping guide
  readme     Generate a README.md for a project
  scaffold   Generate a scaffold script for a project
  architect  Interview, blueprint, and fabricate a new project
  models     List supported AI models

Global Options:
  --model     AI model identifier (see 'agw models')
  --timeout   Per-request timeout (default: 120s)
  --json      Output as JSON
  --no-color  Disable colored output
  -q          Suppress progress output
  --version   Show version and exit

Examples:
  agw profile init
  agw models
  agw setup --out ./scripts
  agw readme --name "City Sync Dashboard" --desc "Syncs city data"
  agw architect "a CLI that syncs city data to a dashboard"
  agw --model claude-3-5-sonnet-20241022 setup

Getting Started:
  1. Create your profile:   agw profile init
  2. Edit it:               $EDITOR ~/.agw/profile.yaml
  3. Generate something:    agw setup

Environment Variables:
  GEMINI_API_KEY      Google Gemini API key
  ANTHROPIC_API_KEY   Anthropic API key
  DEEPSEEK_API_KEY    DeepSeek API key
  OPENROUTER_API_KEY  OpenRouter API key (Qwen models)
  MISTRAL_API_KEY     Mistral API key
  AGW_HOME            Config directory (default: ~/.agw)

Keys may also live in the profile file or a local .env.

For detailed command help: agw <command> --help

`)
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("agw version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	if globals.JSON {
		globals.Quiet = true
	}
	ui.InitColors(globals.NoColor)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "profile":
		runProfile(cmdArgs, globals)
	case "setup":
		runSetup(cmdArgs, globals)
	case "drive":
		runDrive(cmdArgs, globals)
	case "readme":
		runReadme(cmdArgs, globals)
	case "scaffold":
		runScaffold(cmdArgs, globals)
	case "architect":
		runArchitect(cmdArgs, globals)
	case "models":
		runModels(cmdArgs, globals)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

// loadGenerator loads the profile and wires up the generation pipeline.
// Shared by every generating command.
func loadGenerator(globals GlobalFlags) (*wizard.Generator, *config.Config, llm.ModelID) {
	cfg, err := config.Load()
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}

	registry := llm.NewRegistry(cfg.Credentials, llm.Options{Timeout: globals.Timeout})
	gen := wizard.NewGenerator(registry)
	gen.Heuristic = cfg.HeuristicExtraction

	model := cfg.DefaultModel
	if globals.Model != "" {
		model = llm.ModelID(globals.Model)
	}
	return gen, cfg, model
}
