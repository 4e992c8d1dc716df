// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masonerlabs/antigravity/internal/errors"
)

const blueprintJSON = `{
	"name": "City Sync Dashboard",
	"architectureType": "MODULAR",
	"description": "Syncs city data to a dashboard",
	"phases": ["Core sync", "Dashboard UI"],
	"techStack": ["Go", "PostgreSQL"],
	"folderStructure": "src/\n  sync/\n  web/",
	"rationale": "Multiple independent concerns"
}`

func TestParseBlueprint_FencedJSON(t *testing.T) {
	raw := "Here is your blueprint:\n\n```json\n" + blueprintJSON + "\n```\n\nLet me know what you think."

	bp, err := ParseBlueprint(raw)
	require.NoError(t, err)
	assert.Equal(t, "City Sync Dashboard", bp.Name)
	assert.Equal(t, ArchitectureModular, bp.ArchitectureType)
	assert.Equal(t, []string{"Core sync", "Dashboard UI"}, bp.Phases)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, bp.TechStack)
}

func TestParseBlueprint_GenericFence(t *testing.T) {
	raw := "```\n" + blueprintJSON + "\n```"

	bp, err := ParseBlueprint(raw)
	require.NoError(t, err)
	assert.Equal(t, "City Sync Dashboard", bp.Name)
}

func TestParseBlueprint_BareJSON(t *testing.T) {
	bp, err := ParseBlueprint(blueprintJSON)
	require.NoError(t, err)
	assert.Equal(t, "city-sync-dashboard", bp.Slug())
}

func TestParseBlueprint_InvalidJSON(t *testing.T) {
	_, err := ParseBlueprint("I think you should use microservices.")
	require.Error(t, err)

	var ue *errors.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errors.ExitParse, ue.ExitCode)
}

func TestParseBlueprint_MissingName(t *testing.T) {
	_, err := ParseBlueprint(`{"architectureType": "FLAT", "description": "nameless"}`)
	require.Error(t, err)

	var ue *errors.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errors.ExitParse, ue.ExitCode)
}
