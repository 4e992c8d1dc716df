// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"basic phrase", "City Sync Dashboard", "city-sync-dashboard"},
		{"trailing punctuation", "City Sync Dashboard!!", "city-sync-dashboard"},
		{"leading punctuation", "!!Hello World", "hello-world"},
		{"runs of separators", "a  --  b", "a-b"},
		{"mixed case and digits", "Project 2026 Alpha", "project-2026-alpha"},
		{"already a slug", "city-sync-dashboard", "city-sync-dashboard"},
		{"only punctuation", "!!!", ""},
		{"empty", "", ""},
		{"single word", "Antigravity", "antigravity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"City Sync Dashboard!!",
		"  Spaced   Out  ",
		"MiXeD CaSe 99",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugifying a slug must be a no-op: %q", in)
	}
}

func TestSlugify_NoEdgeHyphens(t *testing.T) {
	for _, in := range []string{"--x--", "  a  ", "!a!b!"} {
		got := Slugify(in)
		if got == "" {
			continue
		}
		assert.NotEqual(t, byte('-'), got[0], "no leading hyphen for %q", in)
		assert.NotEqual(t, byte('-'), got[len(got)-1], "no trailing hyphen for %q", in)
	}
}
