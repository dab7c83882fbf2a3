package testutil

import (
	"io/fs"

	"github.com/arthur-debert/dirkeep/pkg/types"
)

// HookFS wraps a types.FS and lets tests override individual
// operations, typically to inject errors like cross-device renames
// or unreadable directories.
type HookFS struct {
	types.FS

	StatFunc    func(name string) (fs.FileInfo, error)
	ReadDirFunc func(name string) ([]fs.DirEntry, error)
	RenameFunc  func(oldpath, newpath string) error
	MkdirFunc   func(path string, perm fs.FileMode) error
}

// NewHookFS wraps base with no overrides installed.
func NewHookFS(base types.FS) *HookFS {
	return &HookFS{FS: base}
}

func (h *HookFS) Stat(name string) (fs.FileInfo, error) {
	if h.StatFunc != nil {
		return h.StatFunc(name)
	}
	return h.FS.Stat(name)
}

func (h *HookFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if h.ReadDirFunc != nil {
		return h.ReadDirFunc(name)
	}
	return h.FS.ReadDir(name)
}

func (h *HookFS) Rename(oldpath, newpath string) error {
	if h.RenameFunc != nil {
		return h.RenameFunc(oldpath, newpath)
	}
	return h.FS.Rename(oldpath, newpath)
}

func (h *HookFS) MkdirAll(path string, perm fs.FileMode) error {
	if h.MkdirFunc != nil {
		return h.MkdirFunc(path, perm)
	}
	return h.FS.MkdirAll(path, perm)
}
