package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dirkeep/pkg/config"
	"github.com/arthur-debert/dirkeep/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "dirkeep.toml", `
[settings]
color = false
use-unicode = false

[dir."/tmp/downloads"]
recursive = true
allowed-files = [{ ext = "torrent" }]
allowed-dirs = []

[automove]
force-dry-run = true
report-info = "count"

[[automove.rules]]
name = "music"
parent = "/tmp/downloads"
to = "/tmp/music"
match = [{ ext = "mp3" }]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Settings.Color)
	assert.False(t, cfg.Settings.Unicode)
	assert.Equal(t, filepath.Dir(path), cfg.ConfigDir)

	dir, ok := cfg.Dirs["/tmp/downloads"]
	require.True(t, ok)
	assert.True(t, dir.Recursive)
	require.NotNil(t, dir.AllowedFiles)
	require.Len(t, *dir.AllowedFiles, 1)
	assert.Equal(t, "torrent", (*dir.AllowedFiles)[0].Ext)
	// present but empty is distinct from absent
	require.NotNil(t, dir.AllowedDirs)
	assert.Empty(t, *dir.AllowedDirs)

	assert.True(t, cfg.AutoMove.ForceDryRun)
	assert.Equal(t, "count", cfg.AutoMove.ReportInfo)
	require.Len(t, cfg.AutoMove.Rules, 1)
	assert.Equal(t, "music", cfg.AutoMove.Rules[0].Name)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "dirkeep.yaml", `
settings:
  color: true
dir:
  /tmp/desk:
    allowed-files:
      - ext: md
automove:
  rules:
    - parent: /tmp/desk
      to: /tmp/docs
      match:
        - ext: pdf
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	dir, ok := cfg.Dirs["/tmp/desk"]
	require.True(t, ok)
	require.NotNil(t, dir.AllowedFiles)
	assert.Equal(t, "md", (*dir.AllowedFiles)[0].Ext)
	require.Len(t, cfg.AutoMove.Rules, 1)
	assert.Equal(t, "/tmp/desk", cfg.AutoMove.Rules[0].Parent)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	// The embedded starter ships in safe mode.
	assert.True(t, cfg.AutoMove.ForceDryRun)
	assert.True(t, cfg.Settings.Color)
	assert.True(t, cfg.Settings.Unicode)
	assert.Equal(t, "any", cfg.AutoMove.ReportInfo)
	assert.Empty(t, cfg.Dirs)
	assert.Empty(t, cfg.AutoMove.Rules)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DIRKEEP_SETTINGS_COLOR", "false")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Settings.Color)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed_toml", func(t *testing.T) {
		path := writeConfig(t, "dirkeep.toml", "[settings\ncolor = ")
		_, err := config.Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := writeConfig(t, "dirkeep.json", "{}")
		_, err := config.Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("bad_report_info", func(t *testing.T) {
		path := writeConfig(t, "dirkeep.toml", `
[automove]
report-info = "sometimes"
`)
		_, err := config.Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("rule_missing_to", func(t *testing.T) {
		path := writeConfig(t, "dirkeep.toml", `
[[automove.rules]]
parent = "/tmp/x"
`)
		_, err := config.Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})
}
