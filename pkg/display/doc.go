// Package display renders check and auto-move results for the
// terminal, plus the raw machine-readable --list formats.
//
// Styling goes through pkg/style and is dropped entirely when color
// is off (config toggle, NO_COLOR, or stdout not a terminal). The
// core packages never format output themselves.
package display
