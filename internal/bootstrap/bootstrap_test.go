// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package bootstrap

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masonerlabs/antigravity/internal/config"
)

func TestInitProfile_CreatesAndIsIdempotent(t *testing.T) {
	t.Setenv("AGW_HOME", t.TempDir())

	info, err := InitProfile(nil)
	require.NoError(t, err)
	assert.True(t, info.Created)

	_, err = os.Stat(info.Path)
	require.NoError(t, err, "profile file must exist after init")

	// Second run must not overwrite.
	cfg, err := config.Load()
	require.NoError(t, err)
	cfg.Profile.Name = "Ada"
	require.NoError(t, cfg.Save())

	again, err := InitProfile(nil)
	require.NoError(t, err)
	assert.False(t, again.Created)

	reloaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "Ada", reloaded.Profile.Name, "existing profile must survive re-init")
}
