package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/errors"
)

func TestInitNonInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)

	var buf bytes.Buffer
	err := Init(&buf, InitOptions{
		Path:           path,
		Title:          "Ops",
		SentinelID:     "2",
		RefreshValue:   "9,999",
		NonInteractive: true,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Created "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ops", cfg.Header.Title)
	assert.Equal(t, "2", cfg.Refresh.SentinelID)
	assert.Equal(t, "9,999", cfg.Refresh.Value)
	assert.Equal(t, config.DefaultConfig().Refresh.Delay, cfg.Refresh.Delay)
}

func TestInitExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	writeFile(t, path, "version: 1\n")

	var buf bytes.Buffer
	err := Init(&buf, InitOptions{Path: path, NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	err = Init(&buf, InitOptions{Path: path, Title: "Replaced", Overwrite: true, NonInteractive: true})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Replaced", cfg.Header.Title)
}

func TestApplyInitOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	applyInitOptions(cfg, InitOptions{DataFile: "stats.toml"})
	assert.Equal(t, "Dashboard", cfg.Header.Title)
	assert.Equal(t, "stats.toml", cfg.DataFile)
}
