// Package matcher implements the single-criterion matchers that rules
// are built from, and the OR-combined sets they are grouped into.
//
// A Matcher tests one directory entry against one criterion: an exact
// name, an unanchored regular expression, a file extension, or an
// entry kind. Matchers are immutable once built; malformed patterns
// are rejected at construction time, never at match time.
package matcher

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/types"
)

// Kind discriminates the matcher variants.
type Kind int

const (
	// KindName matches the entry's base name exactly.
	KindName Kind = iota
	// KindPattern matches the base name against a regular expression.
	KindPattern
	// KindExtension matches the suffix after the last dot, case-sensitively.
	KindExtension
	// KindEntryType matches the entry's filesystem kind (file/directory).
	KindEntryType
)

// Matcher evaluates whether a single directory entry satisfies one
// matching criterion. Exactly one variant field is populated,
// according to MatchKind.
type Matcher struct {
	MatchKind Kind

	name      string
	pattern   *regexp.Regexp
	extension string
	entryType types.EntryKind
}

// NewName returns a matcher for an exact base-name match.
func NewName(name string) Matcher {
	return Matcher{MatchKind: KindName, name: name}
}

// NewPattern compiles the given regular expression and returns a
// pattern matcher. The expression is evaluated unanchored, exactly as
// written; anchoring is the rule author's responsibility. A malformed
// expression is a configuration error.
func NewPattern(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Matcher{}, errors.Wrapf(err, errors.ErrPatternInvalid,
			"invalid match pattern %q", expr)
	}
	return Matcher{MatchKind: KindPattern, pattern: re}, nil
}

// NewExtension returns a matcher for the suffix after the final dot.
func NewExtension(ext string) Matcher {
	return Matcher{MatchKind: KindExtension, extension: ext}
}

// NewEntryType returns a matcher on the entry's filesystem kind.
// It is used in move-rule match lists to target e.g. "any directory".
func NewEntryType(kind types.EntryKind) Matcher {
	return Matcher{MatchKind: KindEntryType, entryType: kind}
}

// Matches reports whether the entry with the given base name and kind
// satisfies this matcher. No file content or metadata beyond name and
// kind is consulted.
func (m Matcher) Matches(name string, kind types.EntryKind) bool {
	switch m.MatchKind {
	case KindName:
		return name == m.name
	case KindPattern:
		return m.pattern.MatchString(name)
	case KindExtension:
		idx := strings.LastIndex(name, ".")
		if idx < 0 {
			// entries with no dot never match an extension matcher
			return false
		}
		return name[idx+1:] == m.extension
	case KindEntryType:
		return kind == m.entryType
	}
	return false
}

// Describe returns a short human-readable form for logs and reports.
func (m Matcher) Describe() string {
	switch m.MatchKind {
	case KindName:
		return "name=" + m.name
	case KindPattern:
		return "pattern=" + m.pattern.String()
	case KindExtension:
		return "ext=" + m.extension
	case KindEntryType:
		return "type=" + m.entryType.String()
	}
	return "unknown"
}
