// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package wizard

import (
	"encoding/json"
	"strings"

	"github.com/masonerlabs/antigravity/internal/errors"
)

// ParseBlueprint extracts a ProjectBlueprint from a blueprint-generation
// response. Models are instructed to emit bare JSON but frequently wrap it
// in a fenced block; a leading ```json fence, or a generic ``` fence, is
// stripped before decoding. Anything else is treated as JSON as-is.
//
// Failures are recoverable: the caller stays on the interview step and may
// regenerate.
func ParseBlueprint(raw string) (*ProjectBlueprint, error) {
	payload := raw
	if i := strings.Index(payload, "```json"); i >= 0 {
		payload = payload[i+len("```json"):]
		if j := strings.Index(payload, "```"); j >= 0 {
			payload = payload[:j]
		}
	} else if i := strings.Index(payload, "```"); i >= 0 {
		payload = payload[i+len("```"):]
		if j := strings.Index(payload, "```"); j >= 0 {
			payload = payload[:j]
		}
	}
	payload = strings.TrimSpace(payload)

	var bp ProjectBlueprint
	if err := json.Unmarshal([]byte(payload), &bp); err != nil {
		return nil, errors.NewParseError(
			"Blueprint response is not valid JSON",
			"The model reply could not be decoded into a project blueprint",
			"Answer another interview question and regenerate the blueprint",
			err,
		)
	}
	if bp.Name == "" {
		return nil, errors.NewParseError(
			"Blueprint is missing a project name",
			"The decoded JSON has an empty 'name' field",
			"Regenerate the blueprint",
			nil,
		)
	}
	return &bp, nil
}

// Slug returns the path-safe name used for generated script files and
// exports.
func (bp *ProjectBlueprint) Slug() string {
	return Slugify(bp.Name)
}
