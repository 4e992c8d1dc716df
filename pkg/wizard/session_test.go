// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_FullLifecycle(t *testing.T) {
	s := NewSession()
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, StepIdeation, s.State().Step)

	require.NoError(t, s.SubmitIdea("a city sync dashboard"))
	assert.Equal(t, StepInterview, s.State().Step)
	assert.Equal(t, "a city sync dashboard", s.State().RawIdea)

	require.NoError(t, s.RecordQuestion("What scale?"))
	require.NoError(t, s.RecordAnswer("small"))
	assert.Len(t, s.State().History, 3)

	require.NoError(t, s.CommitBlueprint(blueprintJSON))
	assert.Equal(t, StepBlueprint, s.State().Step)
	require.NotNil(t, s.State().Blueprint)
	assert.Equal(t, "City Sync Dashboard", s.State().Blueprint.Name)

	require.NoError(t, s.BeginFabrication())
	assert.Equal(t, StepFabrication, s.State().Step)
}

func TestSession_SubmitIdeaValidation(t *testing.T) {
	s := NewSession()

	assert.Error(t, s.SubmitIdea("   "))
	assert.Equal(t, StepIdeation, s.State().Step)

	require.NoError(t, s.SubmitIdea("an idea"))
	assert.Error(t, s.SubmitIdea("another idea"), "idea only accepted at IDEATION")
}

func TestSession_RecordRequiresInterview(t *testing.T) {
	s := NewSession()
	assert.Error(t, s.RecordQuestion("too early"))
	assert.Error(t, s.RecordAnswer("too early"))
}

func TestSession_CommitBlueprintParseFailureStaysOnInterview(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SubmitIdea("an idea"))

	err := s.CommitBlueprint("this is not json")
	require.Error(t, err)
	assert.Equal(t, StepInterview, s.State().Step)
	assert.Nil(t, s.State().Blueprint)

	// The session recovers: a valid reply still commits.
	require.NoError(t, s.CommitBlueprint(blueprintJSON))
	assert.Equal(t, StepBlueprint, s.State().Step)
}

func TestSession_BeginFabricationRequiresBlueprint(t *testing.T) {
	s := NewSession()
	assert.Error(t, s.BeginFabrication())

	require.NoError(t, s.SubmitIdea("an idea"))
	assert.Error(t, s.BeginFabrication())
}

func TestSession_Reset(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SubmitIdea("an idea"))
	require.NoError(t, s.CommitBlueprint(blueprintJSON))

	s.Reset()
	st := s.State()
	assert.Equal(t, StepIdeation, st.Step)
	assert.Empty(t, st.RawIdea)
	assert.Empty(t, st.History)
	assert.Nil(t, st.Blueprint)

	// And the machine is usable again.
	require.NoError(t, s.SubmitIdea("a second idea"))
}

func TestSession_StateIsACopy(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SubmitIdea("an idea"))

	st := s.State()
	st.History[0].Content = "mutated"

	assert.Equal(t, "an idea", s.State().History[0].Content)
}

func TestArchitectState_Transcript(t *testing.T) {
	state := ArchitectState{History: []ChatMessage{
		{Role: RoleUser, Content: "hello"},
		{Role: RoleAI, Content: "hi there"},
	}}
	assert.Equal(t, "USER: hello\n\nAI: hi there", state.Transcript())

	assert.Empty(t, ArchitectState{}.Transcript())
}
