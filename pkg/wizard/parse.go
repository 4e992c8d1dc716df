// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"fmt"
	"regexp"
	"strings"
)

// fencedBlockRe matches one fenced code block: triple backtick, optional
// language tag, newline, non-greedy body, closing triple backtick. Nested
// triple-backtick fences are not supported.
var fencedBlockRe = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")

// filenameMarker is the literal first-line marker that names a generated
// file. Detection is substring based so any comment syntax works:
// '# FILENAME: x.ps1' and '<!-- FILENAME: CONTEXT.md -->' both match.
const filenameMarker = "FILENAME:"

// ExtractOptions controls how blocks without an explicit filename marker
// are handled.
type ExtractOptions struct {
	// Heuristic keeps unmarked blocks and guesses a filename from the
	// language tag and body tokens. When false (the default policy),
	// unmarked blocks are dropped.
	Heuristic bool

	// SlugHint is the project slug used for heuristic init_/resume_ names.
	// Defaults to "project".
	SlugHint string
}

// ExtractScripts scans generated text for fenced code blocks and recovers
// named scripts from them. Result order matches block order; input with no
// blocks yields nil.
//
// Block bodies are trimmed but otherwise returned verbatim, marker line
// included.
func ExtractScripts(text string, opts ExtractOptions) []Script {
	slug := opts.SlugHint
	if slug == "" {
		slug = "project"
	}

	var scripts []Script
	count := 0
	for _, m := range fencedBlockRe.FindAllStringSubmatch(text, -1) {
		count++
		lang := m[1]
		if lang == "" {
			lang = "text"
		}
		content := strings.TrimSpace(m[2])

		if name := markerFilename(content); name != "" {
			scripts = append(scripts, Script{Filename: name, Content: content, Language: lang})
			continue
		}
		if !opts.Heuristic {
			continue
		}
		scripts = append(scripts, Script{
			Filename: guessFilename(lang, content, slug, count),
			Content:  content,
			Language: lang,
		})
	}
	return scripts
}

// markerFilename inspects only the first line of a block body for the
// FILENAME: marker. A trailing '-->' from an HTML comment is stripped.
func markerFilename(content string) string {
	firstLine, _, _ := strings.Cut(content, "\n")
	_, after, found := strings.Cut(firstLine, filenameMarker)
	if !found {
		return ""
	}
	name := strings.TrimSpace(after)
	name = strings.TrimSuffix(name, "-->")
	return strings.TrimSpace(name)
}

// guessFilename classifies an unmarked block. PowerShell-looking content
// becomes an init_ or resume_ script depending on whether a terminal-launch
// token appears; markdown becomes the context document; anything else gets
// a numbered generic name.
func guessFilename(lang, content, slug string, n int) string {
	isPowershell := lang == "powershell" || lang == "ps1" ||
		strings.Contains(content, "New-Item") || strings.Contains(content, "Get-Content")
	if isPowershell {
		if strings.Contains(content, "wt") || strings.Contains(content, "resume") {
			return fmt.Sprintf("resume_%s.ps1", slug)
		}
		return fmt.Sprintf("init_%s.ps1", slug)
	}
	if lang == "md" || lang == "markdown" {
		return "CONTEXT.md"
	}
	return fmt.Sprintf("file_%d.txt", n)
}
