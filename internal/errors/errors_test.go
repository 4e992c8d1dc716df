// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestConstructors_ExitCodes(t *testing.T) {
	wrapped := fmt.Errorf("underlying")

	tests := []struct {
		name string
		err  *UserError
		code int
	}{
		{"config", NewConfigError("m", "c", "f", wrapped), ExitConfig},
		{"parse", NewParseError("m", "c", "f", wrapped), ExitParse},
		{"network", NewNetworkError("m", "c", "f", wrapped), ExitNetwork},
		{"input", NewInputError("m", "c", "f"), ExitInput},
		{"unsupported", NewUnsupportedError("m", "c", "f"), ExitUnsupported},
		{"internal", NewInternalError("m", "c", "f", wrapped), ExitInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.ExitCode != tt.code {
				t.Errorf("ExitCode = %d, want %d", tt.err.ExitCode, tt.code)
			}
		})
	}
}

func TestUserError_Error(t *testing.T) {
	e := NewConfigError("missing key", "", "", fmt.Errorf("boom"))
	if got := e.Error(); got != "missing key: boom" {
		t.Errorf("Error() = %q", got)
	}

	bare := NewInputError("bad flag", "", "")
	if got := bare.Error(); got != "bad flag" {
		t.Errorf("Error() without wrapped error = %q", got)
	}
}

func TestUserError_Unwrap(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	e := NewNetworkError("request failed", "", "", fmt.Errorf("wrap: %w", sentinel))

	if !stderrors.Is(e, sentinel) {
		t.Error("errors.Is should reach the sentinel through UserError")
	}

	var ue *UserError
	if !stderrors.As(error(e), &ue) {
		t.Error("errors.As should find the UserError")
	}
}

func TestFormat_NoColor(t *testing.T) {
	e := NewConfigError("missing key", "no key found", "export THE_KEY", nil)

	out := e.Format(true)
	for _, want := range []string{"Error: missing key", "Cause: no key found", "Fix:   export THE_KEY"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Format(true) must not emit ANSI escapes")
	}
}

func TestFormat_OmitsEmptySections(t *testing.T) {
	e := NewInputError("just a message", "", "")
	out := e.Format(true)

	if strings.Contains(out, "Cause:") || strings.Contains(out, "Fix:") {
		t.Errorf("empty sections should be omitted:\n%s", out)
	}
}

func TestToJSON(t *testing.T) {
	e := NewParseError("bad json", "decode failed", "retry", nil)
	j := e.ToJSON()

	if j.Error != "bad json" || j.Cause != "decode failed" || j.Fix != "retry" {
		t.Errorf("ToJSON() = %+v", j)
	}
	if j.ExitCode != ExitParse {
		t.Errorf("ExitCode = %d, want %d", j.ExitCode, ExitParse)
	}
}
