// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

// Package errors provides structured error handling for the agw CLI.
//
// It defines UserError, which carries what went wrong, why it happened, and
// how to fix it, together with a semantic exit code. Every failure the
// generation pipeline can produce maps onto one of the error categories
// below, so callers can distinguish a missing API key from a transport
// failure or a malformed blueprint without string inspection.
//
// # Exit codes
//
//   - ExitSuccess (0): successful execution
//   - ExitConfig (1): configuration errors (missing credential, bad profile)
//   - ExitParse (2): response parse errors (blueprint JSON, markers)
//   - ExitNetwork (3): network/API errors (non-2xx, timeout)
//   - ExitInput (4): invalid input (missing required argument, bad flag)
//   - ExitUnsupported (6): unknown model identifier or mode
//   - ExitInternal (10): internal errors (bugs)
package errors

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Exit codes for different error categories.
const (
	ExitSuccess     = 0
	ExitConfig      = 1
	ExitParse       = 2
	ExitNetwork     = 3
	ExitInput       = 4
	ExitUnsupported = 6
	ExitInternal    = 10
)

// UserError represents an error with structured context for end users.
//
// It provides three levels of information: Message (what went wrong),
// Cause (why it happened), and Fix (how to resolve it). The ExitCode field
// doubles as the error category tag.
type UserError struct {
	Message  string
	Cause    string
	Fix      string
	ExitCode int

	// Err is the underlying error, if any. It enables errors.Is/As over
	// wrapped chains.
	Err error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error with exit code ExitConfig.
//
// Use this for missing credentials or a missing/invalid profile file:
//
//	return NewConfigError(
//	    "Anthropic API key not configured",
//	    "Neither the profile file nor ANTHROPIC_API_KEY provides a key",
//	    "Add it to ~/.agw/profile.yaml or export ANTHROPIC_API_KEY",
//	    nil,
//	)
func NewConfigError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitConfig, Err: err}
}

// NewParseError creates a response parse error with exit code ExitParse.
//
// Use this when generated text cannot be decoded into the expected shape,
// such as a blueprint reply that is not valid JSON. Parse errors are
// recoverable: the conversation stays where it was and the call can be
// retried.
func NewParseError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitParse, Err: err}
}

// NewNetworkError creates a network error with exit code ExitNetwork.
//
// Use this for failed provider calls: connection errors, timeouts, and
// non-2xx responses. When the provider supplied its own error message it
// belongs in cause.
func NewNetworkError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitNetwork, Err: err}
}

// NewInputError creates an input validation error with exit code ExitInput.
//
// Use this for bad arguments and precondition failures, such as requesting
// README generation without a project configuration. Input errors do not
// wrap an underlying error.
func NewInputError(msg, cause, fix string) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitInput}
}

// NewUnsupportedError creates an unsupported-model error with exit code
// ExitUnsupported.
//
//	return NewUnsupportedError(
//	    "Unsupported AI model",
//	    "No provider is registered for model id 'gpt-99'",
//	    "Run 'agw models' to list supported model identifiers",
//	)
func NewUnsupportedError(msg, cause, fix string) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitUnsupported}
}

// NewInternalError creates an internal error with exit code ExitInternal.
// Internal errors indicate bugs and should be reported.
func NewInternalError(msg, cause, fix string, err error) *UserError {
	return &UserError{Message: msg, Cause: cause, Fix: fix, ExitCode: ExitInternal, Err: err}
}

// Color definitions for error formatting.
var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// Format returns a formatted error message for terminal display.
//
// Output has colored Error/Cause/Fix sections; empty Cause or Fix lines are
// omitted. Color respects the NO_COLOR environment variable and the noColor
// parameter.
func (e *UserError) Format(noColor bool) string {
	originalNoColor := color.NoColor
	defer func() { color.NoColor = originalNoColor }()

	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Message)
	out.WriteString("\n")

	if e.Cause != "" {
		out.WriteString(colorCause.Sprint("Cause: "))
		out.WriteString(e.Cause)
		out.WriteString("\n")
	}

	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}

	return out.String()
}

// ErrorJSON represents error information in JSON format for --json mode.
type ErrorJSON struct {
	Error    string `json:"error"`
	Cause    string `json:"cause,omitempty"`
	Fix      string `json:"fix,omitempty"`
	ExitCode int    `json:"exit_code"`
}

// ToJSON converts the UserError to a JSON-serializable structure.
func (e *UserError) ToJSON() ErrorJSON {
	return ErrorJSON{
		Error:    e.Message,
		Cause:    e.Cause,
		Fix:      e.Fix,
		ExitCode: e.ExitCode,
	}
}

// FatalError prints the error and exits with the appropriate code.
// This function never returns for a non-nil error.
func FatalError(err error, jsonOutput bool) {
	if err == nil {
		return
	}

	if ue, ok := err.(*UserError); ok {
		if jsonOutput {
			enc := json.NewEncoder(os.Stderr)
			enc.SetIndent("", "  ")
			_ = enc.Encode(ue.ToJSON())
		} else {
			fmt.Fprint(os.Stderr, ue.Format(false))
		}
		os.Exit(ue.ExitCode)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(ExitInternal)
}
