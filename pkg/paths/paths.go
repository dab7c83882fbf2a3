// Package paths centralizes path handling for dirkeep: locating the
// configuration file per the XDG Base Directory specification and
// expanding environment variables in user-configured paths.
//
// Everything downstream of pkg/config deals in absolute, fully
// expanded paths; this package is where that guarantee is produced.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/dirkeep/pkg/errors"
)

// AppDirName is the directory name used under the XDG config and
// state homes.
const AppDirName = "dirkeep"

// Config file names probed in order inside the config directory.
var configFileNames = []string{"dirkeep.toml", "dirkeep.yaml"}

// ConfigDir returns the dirkeep configuration directory.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// FindConfigFile locates the configuration file. An explicit path
// wins; otherwise the XDG config directories are searched for
// dirkeep.toml then dirkeep.yaml. Returns an empty string when no
// file exists yet.
func FindConfigFile(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad,
				"cannot resolve config path %q", explicit)
		}
		if _, err := os.Stat(abs); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad,
				"config file %q not readable", abs)
		}
		return abs, nil
	}

	for _, name := range configFileNames {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppDirName, name)); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// DefaultConfigFile returns where genconfig writes the bootstrap
// configuration.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), configFileNames[0])
}

// Expand resolves $VAR and ${VAR} references in a configured path and
// returns it in absolute, cleaned form. HOME and the XDG_* variables
// resolve through adrg/xdg so they work even when the environment
// does not export them; anything else falls back to the environment.
func Expand(path string) (string, error) {
	expanded := os.Expand(path, lookupVar)
	if expanded == "" {
		return "", errors.Newf(errors.ErrConfigInvalid, "path %q expands to nothing", path)
	}
	if !filepath.IsAbs(expanded) {
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigInvalid,
				"cannot resolve path %q", path)
		}
		expanded = abs
	}
	return filepath.Clean(expanded), nil
}

// ExpandRelativeTo behaves like Expand but resolves relative results
// against base instead of the working directory. Used for to-script
// paths, which resolve against the config file's directory.
func ExpandRelativeTo(path, base string) (string, error) {
	expanded := os.Expand(path, lookupVar)
	if expanded == "" {
		return "", errors.Newf(errors.ErrConfigInvalid, "path %q expands to nothing", path)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(base, expanded)
	}
	return filepath.Clean(expanded), nil
}

func lookupVar(name string) string {
	switch name {
	case "HOME":
		return xdg.Home
	case "XDG_CONFIG_HOME":
		return xdg.ConfigHome
	case "XDG_DATA_HOME":
		return xdg.DataHome
	case "XDG_STATE_HOME":
		return xdg.StateHome
	case "XDG_CACHE_HOME":
		return xdg.CacheHome
	case "XDG_DOWNLOAD_DIR":
		return xdg.UserDirs.Download
	case "XDG_DOCUMENTS_DIR":
		return xdg.UserDirs.Documents
	case "XDG_MUSIC_DIR":
		return xdg.UserDirs.Music
	case "XDG_PICTURES_DIR":
		return xdg.UserDirs.Pictures
	case "XDG_VIDEOS_DIR":
		return xdg.UserDirs.Videos
	case "XDG_DESKTOP_DIR":
		return xdg.UserDirs.Desktop
	}
	return os.Getenv(name)
}
