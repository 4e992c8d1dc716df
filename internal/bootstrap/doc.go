// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

// Package bootstrap creates the agw config directory and default profile.
//
// It backs the 'agw profile init' command. Initialization is idempotent and
// never overwrites an existing profile file.
package bootstrap
