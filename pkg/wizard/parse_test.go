// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractScripts_MarkedBlocks(t *testing.T) {
	text := "Here is your setup.\n\n" +
		"```powershell\n# FILENAME: init_foo.ps1\nNew-Item -ItemType Directory foo\n```\n\n" +
		"Some prose between blocks.\n\n" +
		"```md\n<!-- FILENAME: CONTEXT.md -->\n# Foo\nProject context.\n```\n"

	scripts := ExtractScripts(text, ExtractOptions{})
	require.Len(t, scripts, 2)

	assert.Equal(t, "init_foo.ps1", scripts[0].Filename)
	assert.Equal(t, "powershell", scripts[0].Language)
	assert.Contains(t, scripts[0].Content, "# FILENAME: init_foo.ps1")
	assert.Contains(t, scripts[0].Content, "New-Item")

	assert.Equal(t, "CONTEXT.md", scripts[1].Filename)
	assert.Equal(t, "md", scripts[1].Language)
	assert.Contains(t, scripts[1].Content, "Project context.")
}

func TestExtractScripts_OrderPreserved(t *testing.T) {
	text := "```\n# FILENAME: b.txt\nb\n```\n```\n# FILENAME: a.txt\na\n```\n"

	scripts := ExtractScripts(text, ExtractOptions{})
	require.Len(t, scripts, 2)
	assert.Equal(t, "b.txt", scripts[0].Filename)
	assert.Equal(t, "a.txt", scripts[1].Filename)
}

func TestExtractScripts_StrictDropsUnmarked(t *testing.T) {
	text := "```powershell\nNew-Item -ItemType Directory foo\n```\n" +
		"```powershell\n# FILENAME: keep.ps1\nWrite-Host hi\n```\n"

	scripts := ExtractScripts(text, ExtractOptions{})
	require.Len(t, scripts, 1)
	assert.Equal(t, "keep.ps1", scripts[0].Filename)
}

func TestExtractScripts_NoBlocks(t *testing.T) {
	assert.Nil(t, ExtractScripts("Just prose, no code at all.", ExtractOptions{}))
	assert.Nil(t, ExtractScripts("", ExtractOptions{}))
}

func TestExtractScripts_HeuristicNames(t *testing.T) {
	opts := ExtractOptions{Heuristic: true, SlugHint: "city-sync"}

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"powershell init",
			"```powershell\nNew-Item -ItemType Directory city-sync\n```",
			"init_city-sync.ps1",
		},
		{
			"powershell resume via wt token",
			"```powershell\nwt.exe new-tab pwsh\n```",
			"resume_city-sync.ps1",
		},
		{
			"content sniff without language tag",
			"```\nNew-Item -ItemType File README.md\n```",
			"init_city-sync.ps1",
		},
		{
			"markdown context",
			"```markdown\n# Context\n```",
			"CONTEXT.md",
		},
		{
			"generic fallback",
			"```\nhello world\n```",
			"file_1.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scripts := ExtractScripts(tt.text, opts)
			require.Len(t, scripts, 1)
			assert.Equal(t, tt.want, scripts[0].Filename)
		})
	}
}

func TestExtractScripts_HeuristicDefaultSlug(t *testing.T) {
	scripts := ExtractScripts("```powershell\nNew-Item x\n```", ExtractOptions{Heuristic: true})
	require.Len(t, scripts, 1)
	assert.Equal(t, "init_project.ps1", scripts[0].Filename)
}

func TestExtractScripts_MarkerOnlyOnFirstLine(t *testing.T) {
	// A marker buried mid-block must not name the file.
	text := "```powershell\nWrite-Host hi\n# FILENAME: late.ps1\n```"

	scripts := ExtractScripts(text, ExtractOptions{})
	assert.Nil(t, scripts)
}

func TestMarkerFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"# FILENAME: init_foo.ps1\nbody", "init_foo.ps1"},
		{"<!-- FILENAME: CONTEXT.md -->\nbody", "CONTEXT.md"},
		{"// FILENAME: main.go", "main.go"},
		{"#FILENAME:   spaced.ps1  ", "spaced.ps1"},
		{"no marker here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, markerFilename(tt.in), "input %q", tt.in)
	}
}
