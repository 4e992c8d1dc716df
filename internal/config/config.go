// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

// Package config loads and persists the agw profile file.
//
// The profile lives at ~/.agw/profile.yaml and carries the user profile,
// the default model, API credentials, and extraction policy. A .env file in
// the working directory is honored before environment lookups, so per-repo
// keys work without polluting the shell.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/masonerlabs/antigravity/internal/errors"
	"github.com/masonerlabs/antigravity/pkg/llm"
	"github.com/masonerlabs/antigravity/pkg/wizard"
)

// Config is the on-disk profile document.
type Config struct {
	Profile      wizard.UserProfile `yaml:"profile"`
	DefaultModel llm.ModelID        `yaml:"default_model"`
	Credentials  llm.Credentials    `yaml:"credentials"`

	// HeuristicExtraction keeps fenced blocks that carry no FILENAME
	// marker, guessing names from language and content. Off by default.
	HeuristicExtraction bool `yaml:"heuristic_extraction"`
}

// Default returns a config with placeholder profile paths and the default
// model selected.
func Default() *Config {
	return &Config{
		Profile: wizard.UserProfile{
			Name:            "Your Name",
			Username:        "you@example.com",
			GoogleDrivePath: `G:\My Drive`,
			OneDrivePath:    `C:\Users\you\OneDrive`,
			GitHubPath:      `C:\Users\you\OneDrive\Documents\GitHub`,
		},
		DefaultModel: llm.DefaultModel,
	}
}

// Dir returns the agw config directory (~/.agw), honoring AGW_HOME for
// tests and unusual setups.
func Dir() (string, error) {
	if dir := os.Getenv("AGW_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".agw"), nil
}

// Path returns the profile file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profile.yaml"), nil
}

// Load reads the profile file. A missing file is a config error pointing at
// 'agw profile init'; a present but malformed file is also a config error.
//
// A .env in the working directory is loaded first so environment credential
// fallback sees it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path, err := Path()
	if err != nil {
		return nil, errors.NewConfigError("Cannot locate profile file", err.Error(), "Set HOME or AGW_HOME", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError(
				"Profile not found",
				fmt.Sprintf("No profile file at %s", path),
				"Run 'agw profile init' to create one",
				err,
			)
		}
		return nil, errors.NewConfigError("Cannot read profile file", err.Error(), "Check file permissions on "+path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(
			"Profile file is not valid YAML",
			err.Error(),
			"Fix "+path+" or delete it and run 'agw profile init' again",
			err,
		)
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = llm.DefaultModel
	}
	return cfg, nil
}

// LoadOrDefault reads the profile file, falling back to defaults when it
// does not exist yet. Other errors still surface.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if err == nil {
		return cfg, nil
	}
	if stderrors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return nil, err
}

// Save writes the config back to the profile file, creating the directory
// as needed. The file is written 0600 because it may hold API keys.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}
