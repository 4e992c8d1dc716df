// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/masonerlabs/antigravity/internal/ui"
	"github.com/masonerlabs/antigravity/pkg/wizard"
)

// saveScripts writes every extracted script into dir, creating it as
// needed. Filenames come straight from the FILENAME markers; they are
// flattened to their base name so a hostile response cannot escape dir.
func saveScripts(dir string, scripts []wizard.Script) error {
	if len(scripts) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, s := range scripts {
		name := filepath.Base(s.Filename)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(s.Content+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		ui.Successf("Saved %s", path)
	}
	return nil
}

// saveMarkdown writes the full generated markdown next to the scripts.
func saveMarkdown(dir, name, markdown string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	ui.Successf("Saved %s", path)
	return nil
}

// saveTranscript exports an architect conversation as a timestamped
// markdown document so a session can be reviewed or resumed by hand.
func saveTranscript(dir string, state wizard.ArchitectState) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Architect Session\n\n")
	if state.RawIdea != "" {
		fmt.Fprintf(&b, "**Idea:** %s\n\n", state.RawIdea)
	}
	for _, m := range state.History {
		role := "You"
		if m.Role == wizard.RoleAI {
			role = "Architect"
		}
		fmt.Fprintf(&b, "**%s:** %s\n\n", role, m.Content)
	}
	if state.Blueprint != nil {
		fmt.Fprintf(&b, "## Blueprint: %s (%s)\n\n%s\n", state.Blueprint.Name, state.Blueprint.ArchitectureType, state.Blueprint.Description)
	}

	name := fmt.Sprintf("transcript_%s.md", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	ui.Successf("Saved %s", path)
	return nil
}
