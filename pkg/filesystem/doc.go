// Package filesystem provides implementations of the types.FS
// interface, currently the standard OS filesystem.
package filesystem
