// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masonerlabs/antigravity/internal/errors"
)

var testProfile = UserProfile{
	Name:            "Ada",
	Username:        "ada@example.com",
	Email:           "ada@example.com",
	PhoneCell:       "555-0100",
	PhoneDesk:       "555-0200",
	Address:         "1 Engine Way",
	GoogleDrivePath: `G:\My Drive`,
	OneDrivePath:    `C:\Users\ada\OneDrive`,
	GitHubPath:      `C:\Users\ada\OneDrive\Documents\GitHub`,
}

func TestBuildPrompt_Readme(t *testing.T) {
	project := &ProjectConfig{
		ProjectName: "Sync Tool",
		ProjectSlug: "sync-tool",
		Location:    LocationOneDrive,
		Tools:       []string{"Node.js", "Docker"},
		Description: "desc",
	}

	prompt, err := BuildPrompt(ModeReadmeGen, testProfile, project, nil)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Sync Tool")
	assert.Contains(t, prompt, "desc")
	assert.Contains(t, prompt, "Ada")
	assert.Contains(t, prompt, "Node.js, Docker")
	assert.Contains(t, prompt, "ada@example.com")
}

func TestBuildPrompt_MissingProject(t *testing.T) {
	for _, mode := range []GeneratorMode{ModeReadmeGen, ModeProjectScaffold} {
		_, err := BuildPrompt(mode, testProfile, nil, nil)
		require.Error(t, err, "mode %s", mode)

		var ue *errors.UserError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, errors.ExitInput, ue.ExitCode)
	}
}

func TestBuildPrompt_MissingState(t *testing.T) {
	for _, mode := range []GeneratorMode{ModeArchitectInterview, ModeArchitectBlueprint, ModeArchitectFabricate} {
		_, err := BuildPrompt(mode, testProfile, nil, nil)
		require.Error(t, err, "mode %s", mode)
	}
}

func TestBuildPrompt_FabricateRequiresBlueprint(t *testing.T) {
	state := &ArchitectState{Step: StepFabrication}
	_, err := BuildPrompt(ModeArchitectFabricate, testProfile, nil, state)
	require.Error(t, err)

	var ue *errors.UserError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, errors.ExitInput, ue.ExitCode)
}

func TestBuildPrompt_Interview(t *testing.T) {
	state := &ArchitectState{
		Step:    StepInterview,
		RawIdea: "a city sync dashboard",
		History: []ChatMessage{
			{Role: RoleUser, Content: "a city sync dashboard"},
			{Role: RoleAI, Content: "What scale do you expect?"},
			{Role: RoleUser, Content: "a few thousand users"},
		},
	}

	prompt, err := BuildPrompt(ModeArchitectInterview, testProfile, nil, state)
	require.NoError(t, err)

	assert.Contains(t, prompt, "USER: a city sync dashboard")
	assert.Contains(t, prompt, "AI: What scale do you expect?")
	assert.Contains(t, prompt, "USER: a few thousand users")
	assert.Contains(t, prompt, `"a city sync dashboard"`)
}

func TestBuildPrompt_Fabricate(t *testing.T) {
	profile := testProfile
	profile.HostingHostname = "box.example.com"
	profile.HostingUsername = "ada"
	profile.SSHKeyPath = `C:\Users\ada\.ssh\id_ed25519`

	state := &ArchitectState{
		Step: StepFabrication,
		Blueprint: &ProjectBlueprint{
			Name:             "City Sync Dashboard",
			ArchitectureType: ArchitectureModular,
			TechStack:        []string{"Go"},
			Phases:           []string{"Phase 1: Core"},
		},
	}

	prompt, err := BuildPrompt(ModeArchitectFabricate, profile, nil, state)
	require.NoError(t, err)

	assert.Contains(t, prompt, "# FILENAME: init_city-sync-dashboard.ps1")
	assert.Contains(t, prompt, "# FILENAME: resume_city-sync-dashboard.ps1")
	assert.Contains(t, prompt, "<!-- FILENAME: CONTEXT.md -->")
	assert.Contains(t, prompt, "ada@box.example.com")
	assert.Contains(t, prompt, "Set-Clipboard")
}

func TestBuildPrompt_DriveAndSetupUseProfile(t *testing.T) {
	drive, err := BuildPrompt(ModeDriveMapping, testProfile, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, drive, "Ada")
	assert.Contains(t, drive, "ada@example.com")

	setup, err := BuildPrompt(ModeSetupGuide, testProfile, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, setup, testProfile.OneDrivePath)
	assert.Contains(t, setup, "# FILENAME: bootstrap_antigravity.ps1")
}

func TestBuildPrompt_UnknownMode(t *testing.T) {
	_, err := BuildPrompt(GeneratorMode("NOT_A_MODE"), testProfile, nil, nil)
	require.Error(t, err)
}

func TestSystemInstruction_AllModes(t *testing.T) {
	modes := []GeneratorMode{
		ModeSetupGuide, ModeProjectScaffold, ModeReadmeGen, ModeDriveMapping,
		ModeArchitectInterview, ModeArchitectBlueprint, ModeArchitectFabricate,
	}
	seen := map[string]bool{}
	for _, mode := range modes {
		instr := SystemInstruction(mode)
		assert.NotEmpty(t, instr, "mode %s", mode)
		seen[instr] = true
	}
	// Personas differ across the pipeline stages.
	assert.Greater(t, len(seen), 3)

	assert.Equal(t, "You are a helpful AI assistant.", SystemInstruction(GeneratorMode("NOT_A_MODE")))
}
