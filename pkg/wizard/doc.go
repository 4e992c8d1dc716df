// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

// Package wizard implements the generation pipeline of the AntiGravity
// setup wizard: prompt construction, provider routing, response parsing,
// and the multi-step project architect conversation.
//
// The package is pure with respect to state: every entry point takes the
// user profile, project configuration, and conversation state by value and
// retains nothing between calls. The only side effect is the outbound
// provider call performed by Generator.
//
// # Pipeline
//
//	mode + profile + project/state
//	    │
//	    ├── SystemInstruction(mode)       persona for the system message
//	    ├── BuildPrompt(...)              mode template interpolation
//	    │
//	    ▼
//	Generator ── llm.Registry ── Provider (one HTTP call)
//	    │
//	    ├── ARCHITECT_BLUEPRINT: raw text returned verbatim
//	    └── otherwise: ExtractScripts(...) recovers named files
//
// # Filename marker contract
//
// Generated code blocks may carry a first-line marker naming the file:
//
//	# FILENAME: init_myproject.ps1
//	<!-- FILENAME: CONTEXT.md -->
//
// Marker detection is substring based, not comment-syntax aware. See
// ExtractScripts for the strict and heuristic naming policies.
package wizard
