// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/masonerlabs/antigravity/internal/config"
)

// ProfileInfo holds information about an initialized profile.
type ProfileInfo struct {
	Path    string
	Created bool
}

// InitProfile initializes the agw config directory and profile file.
// This function is idempotent: calling it multiple times is safe and an
// existing profile is never overwritten.
//
// The function:
//  1. Creates ~/.agw (or AGW_HOME) if it doesn't exist
//  2. Writes a default profile.yaml if none exists
//
// Parameters:
//   - logger: optional logger (nil uses default)
//
// Returns:
//   - ProfileInfo: the profile path and whether it was created
//   - error: if initialization fails
func InitProfile(logger *slog.Logger) (*ProfileInfo, error) {
	if logger == nil {
		logger = slog.Default()
	}

	path, err := config.Path()
	if err != nil {
		return nil, err
	}

	logger.Info("bootstrap.profile.init.start", "path", path)

	if _, err := os.Stat(path); err == nil {
		logger.Debug("bootstrap.profile.exists", "path", path)
		return &ProfileInfo{Path: path, Created: false}, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat profile: %w", err)
	}

	if err := config.Default().Save(); err != nil {
		return nil, fmt.Errorf("write default profile: %w", err)
	}

	logger.Info("bootstrap.profile.init.success", "path", path)
	return &ProfileInfo{Path: path, Created: true}, nil
}
