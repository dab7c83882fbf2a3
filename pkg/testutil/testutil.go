// Package testutil provides helpers for tests that need real
// directory trees, executable naming scripts, or fault-injecting
// filesystem wrappers.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTree materializes a directory tree under root. Keys ending in
// "/" become directories; other keys become files holding their
// value. Parent directories are created as needed.
func CreateTree(t *testing.T, root string, entries map[string]string) {
	t.Helper()
	for name, content := range entries {
		full := filepath.Join(root, name)
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

// WriteScript writes an executable shell script into dir and returns
// its absolute path.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

// ReadNames lists the base names in dir, for asserting on post-move
// directory contents.
func ReadNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
