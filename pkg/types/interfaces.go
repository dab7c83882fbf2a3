package types

import (
	"io/fs"
)

// FS is the filesystem interface required for dirkeep operations.
// The OS implementation lives in pkg/filesystem; tests substitute
// temp-dir backed or failing implementations.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Move operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
}
