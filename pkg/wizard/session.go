// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/masonerlabs/antigravity/internal/errors"
)

// ArchitectStep is the current stage of an architect conversation. The
// machine only moves forward; the single backwards transition is a full
// reset to IDEATION.
type ArchitectStep string

const (
	StepIdeation    ArchitectStep = "IDEATION"
	StepInterview   ArchitectStep = "INTERVIEW"
	StepBlueprint   ArchitectStep = "BLUEPRINT"
	StepFabrication ArchitectStep = "FABRICATION"
)

// Message roles in the interview transcript. The history is a flat
// role-tagged log; a user answer and the following model question are two
// entries, not a paired record.
type ChatRole string

const (
	RoleUser ChatRole = "user"
	RoleAI   ChatRole = "ai"
)

// ChatMessage is one entry in the interview history.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ArchitectState is the conversation data threaded through the architect
// modes. Blueprint is nil until the BLUEPRINT step is reached.
type ArchitectState struct {
	Step      ArchitectStep     `json:"step"`
	RawIdea   string            `json:"raw_idea"`
	History   []ChatMessage     `json:"history"`
	Blueprint *ProjectBlueprint `json:"blueprint,omitempty"`
}

// Transcript renders the history as the role-prefixed text block the
// interview and blueprint prompts embed.
func (s ArchitectState) Transcript() string {
	lines := make([]string, 0, len(s.History))
	for _, m := range s.History {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(string(m.Role)), m.Content))
	}
	return strings.Join(lines, "\n\n")
}

// Session owns one architect conversation and enforces its legal
// transitions. It is not safe for concurrent use; generation calls are
// user-initiated one at a time.
type Session struct {
	id    string
	state ArchitectState
}

// NewSession returns a session at IDEATION with empty history.
func NewSession() *Session {
	return &Session{
		id:    uuid.NewString(),
		state: ArchitectState{Step: StepIdeation},
	}
}

// ID returns the session identifier used to name exported transcripts.
func (s *Session) ID() string { return s.id }

// State returns a copy of the conversation state for prompt building and
// rendering. The history slice is cloned so callers cannot mutate the
// session through it.
func (s *Session) State() ArchitectState {
	st := s.state
	st.History = append([]ChatMessage(nil), s.state.History...)
	return st
}

// SubmitIdea records the original free-text idea and moves the session to
// INTERVIEW. Only legal from IDEATION.
func (s *Session) SubmitIdea(idea string) error {
	if s.state.Step != StepIdeation {
		return errors.NewInputError(
			"Cannot submit a new idea now",
			fmt.Sprintf("The conversation is at %s; ideas are only accepted at %s", s.state.Step, StepIdeation),
			"Reset the session to start over",
		)
	}
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return errors.NewInputError(
			"Project idea is empty",
			"The architect needs an initial idea to interview you about",
			"Describe the project in a sentence or two",
		)
	}
	s.state.RawIdea = idea
	s.state.History = append(s.state.History, ChatMessage{Role: RoleUser, Content: idea})
	s.state.Step = StepInterview
	return nil
}

// RecordQuestion appends a model question to the history. Only legal during
// INTERVIEW, which may self-loop any number of times.
func (s *Session) RecordQuestion(question string) error {
	return s.record(ChatMessage{Role: RoleAI, Content: question})
}

// RecordAnswer appends a user answer to the history.
func (s *Session) RecordAnswer(answer string) error {
	return s.record(ChatMessage{Role: RoleUser, Content: answer})
}

func (s *Session) record(m ChatMessage) error {
	if s.state.Step != StepInterview {
		return errors.NewInputError(
			"Interview is not active",
			fmt.Sprintf("The conversation is at %s", s.state.Step),
			"Submit an idea first, or reset the session",
		)
	}
	s.state.History = append(s.state.History, m)
	return nil
}

// CommitBlueprint parses the blueprint-generation response and, on success,
// moves the session to BLUEPRINT. A parse failure leaves the session on
// INTERVIEW so the user can retry; the returned error explains the failure.
func (s *Session) CommitBlueprint(raw string) error {
	if s.state.Step != StepInterview {
		return errors.NewInputError(
			"Cannot commit a blueprint now",
			fmt.Sprintf("The conversation is at %s; blueprints are committed from %s", s.state.Step, StepInterview),
			"Reset the session to start over",
		)
	}
	bp, err := ParseBlueprint(raw)
	if err != nil {
		return err
	}
	s.state.Blueprint = bp
	s.state.Step = StepBlueprint
	return nil
}

// BeginFabrication moves the session to FABRICATION. Requires a committed
// blueprint.
func (s *Session) BeginFabrication() error {
	if s.state.Step != StepBlueprint || s.state.Blueprint == nil {
		return errors.NewInputError(
			"No blueprint to fabricate from",
			fmt.Sprintf("The conversation is at %s and blueprint is %s", s.state.Step, presence(s.state.Blueprint)),
			"Commit a blueprint before launching fabrication",
		)
	}
	s.state.Step = StepFabrication
	return nil
}

// Reset returns the session to IDEATION with zeroed idea, history, and
// blueprint. Legal from any step.
func (s *Session) Reset() {
	s.state = ArchitectState{Step: StepIdeation}
}

func presence(bp *ProjectBlueprint) string {
	if bp == nil {
		return "missing"
	}
	return "present"
}
