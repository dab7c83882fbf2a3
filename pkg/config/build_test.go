package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dirkeep/pkg/config"
	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/types"
)

func rawList(ms ...config.RawMatcher) *[]config.RawMatcher {
	return &ms
}

func TestBuildRuleSet_DirRules(t *testing.T) {
	cfg := &config.Config{
		Dirs: map[string]config.DirConfig{
			"/tmp/downloads": {
				Recursive:    true,
				AllowedFiles: rawList(config.RawMatcher{Ext: "torrent"}),
				AllowedDirs:  rawList(),
				RecursiveIgnoreChildren: []config.RawMatcher{
					{Name: "node_modules"},
				},
			},
		},
	}

	rs, err := config.BuildRuleSet(cfg)
	require.NoError(t, err)
	require.Len(t, rs.DirRules, 1)

	rule := rs.DirRules[0]
	assert.Equal(t, "/tmp/downloads", rule.Path)
	assert.True(t, rule.Recursive)

	// allowed-files compiled with its single matcher
	require.NotNil(t, rule.AllowedFiles)
	assert.True(t, rule.AllowedFiles.Allows("x.torrent", types.KindFile))
	assert.False(t, rule.AllowedFiles.Allows("x.iso", types.KindFile))

	// present-empty stays deny-all
	require.NotNil(t, rule.AllowedDirs)
	assert.False(t, rule.AllowedDirs.Allows("anything", types.KindDirectory))

	require.Len(t, rule.RecursiveIgnoreChildren, 1)
	assert.True(t, rule.RecursiveIgnoreChildren[0].Matches("node_modules", types.KindDirectory))
}

func TestBuildRuleSet_AbsentSetsStayNil(t *testing.T) {
	cfg := &config.Config{
		Dirs: map[string]config.DirConfig{"/tmp/x": {}},
	}

	rs, err := config.BuildRuleSet(cfg)
	require.NoError(t, err)
	require.Len(t, rs.DirRules, 1)

	assert.Nil(t, rs.DirRules[0].AllowedDirs)
	assert.Nil(t, rs.DirRules[0].AllowedFiles)
	assert.True(t, rs.DirRules[0].AllowedFiles.Allows("anything", types.KindFile))
}

func TestBuildRuleSet_MoveRules(t *testing.T) {
	cfg := &config.Config{
		ConfigDir: "/home/u/.config/dirkeep",
		AutoMove: config.AutoMoveConfig{
			Rules: []config.MoveRuleConfig{
				{
					Name:     "music",
					Parent:   "/tmp/downloads",
					To:       "/tmp/music",
					ToScript: "scripts/tag.sh",
					Match:    []config.RawMatcher{{Ext: "mp3"}, {Type: "directory"}},
				},
			},
		},
	}

	rs, err := config.BuildRuleSet(cfg)
	require.NoError(t, err)
	require.Len(t, rs.MoveRules, 1)

	rule := rs.MoveRules[0]
	assert.Equal(t, "/tmp/downloads", rule.Parent)
	assert.Equal(t, "/tmp/music", rule.To)
	// relative to-script resolves against the config directory
	assert.Equal(t, "/home/u/.config/dirkeep/scripts/tag.sh", rule.ToScript)

	assert.True(t, rule.MatchesEntry("song.mp3", types.KindFile))
	assert.True(t, rule.MatchesEntry("album", types.KindDirectory))
	assert.False(t, rule.MatchesEntry("notes.txt", types.KindFile))
}

func TestBuildRuleSet_AbsoluteScriptUnchanged(t *testing.T) {
	cfg := &config.Config{
		ConfigDir: "/home/u/.config/dirkeep",
		AutoMove: config.AutoMoveConfig{
			Rules: []config.MoveRuleConfig{
				{Parent: "/p", To: "/t", ToScript: "/opt/scripts/tag.sh"},
			},
		},
	}

	rs, err := config.BuildRuleSet(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/opt/scripts/tag.sh", rs.MoveRules[0].ToScript)
}

func TestBuildRuleSet_SortedForDisplay(t *testing.T) {
	cfg := &config.Config{
		Dirs: map[string]config.DirConfig{
			"/tmp/b": {},
			"/tmp/a": {},
			"/tmp/c": {},
		},
	}

	rs, err := config.BuildRuleSet(cfg)
	require.NoError(t, err)
	require.Len(t, rs.DirRules, 3)
	assert.Equal(t, "/tmp/a", rs.DirRules[0].Path)
	assert.Equal(t, "/tmp/b", rs.DirRules[1].Path)
	assert.Equal(t, "/tmp/c", rs.DirRules[2].Path)
}

func TestBuildRuleSet_MatcherValidation(t *testing.T) {
	t.Run("no_fields", func(t *testing.T) {
		cfg := &config.Config{
			Dirs: map[string]config.DirConfig{
				"/tmp/x": {AllowedFiles: rawList(config.RawMatcher{})},
			},
		}
		_, err := config.BuildRuleSet(cfg)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("two_fields", func(t *testing.T) {
		cfg := &config.Config{
			Dirs: map[string]config.DirConfig{
				"/tmp/x": {AllowedFiles: rawList(config.RawMatcher{Name: "a", Ext: "b"})},
			},
		}
		_, err := config.BuildRuleSet(cfg)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("type_rejected_outside_automove", func(t *testing.T) {
		cfg := &config.Config{
			Dirs: map[string]config.DirConfig{
				"/tmp/x": {AllowedFiles: rawList(config.RawMatcher{Type: "file"})},
			},
		}
		_, err := config.BuildRuleSet(cfg)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("unknown_type_value", func(t *testing.T) {
		cfg := &config.Config{
			AutoMove: config.AutoMoveConfig{
				Rules: []config.MoveRuleConfig{
					{Parent: "/p", To: "/t", Match: []config.RawMatcher{{Type: "symlink"}}},
				},
			},
		}
		_, err := config.BuildRuleSet(cfg)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("bad_pattern", func(t *testing.T) {
		cfg := &config.Config{
			Dirs: map[string]config.DirConfig{
				"/tmp/x": {AllowedFiles: rawList(config.RawMatcher{Pattern: "([bad"})},
			},
		}
		_, err := config.BuildRuleSet(cfg)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
	})
}

func TestBuildRuleSet_ExpandsVariables(t *testing.T) {
	t.Setenv("DIRKEEP_TEST_ROOT", "/srv/data")

	cfg := &config.Config{
		Dirs: map[string]config.DirConfig{
			"$DIRKEEP_TEST_ROOT/incoming": {},
		},
	}

	rs, err := config.BuildRuleSet(cfg)
	require.NoError(t, err)
	require.Len(t, rs.DirRules, 1)
	assert.Equal(t, "/srv/data/incoming", rs.DirRules[0].Path)
}
