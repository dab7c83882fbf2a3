// Package types holds the small set of types shared across dirkeep
// packages: the filesystem interface and the file/directory kind enum.
//
// Keeping these here avoids import cycles between the rule model,
// the scanner and the move pipeline.
package types
