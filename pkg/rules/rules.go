// Package rules defines the validated, path-resolved rule model that
// the checker and auto-move pipeline consume.
//
// Rule sets are built once per invocation by pkg/config and are
// read-only afterwards. All paths in a rule set are absolute and have
// already had environment variables resolved.
package rules

import (
	"sort"
	"strings"

	"github.com/arthur-debert/dirkeep/pkg/matcher"
	"github.com/arthur-debert/dirkeep/pkg/types"
)

// DirRule is a compliance rule bound to one absolute directory path.
// Any child of Path that fails the kind-appropriate allowed set is
// reported as misplaced.
type DirRule struct {
	// Path is the absolute, variable-resolved directory to check.
	Path string

	// AllowedDirs constrains directory children. nil allows every
	// directory; a present set allows only matched names.
	AllowedDirs *matcher.Set

	// AllowedFiles constrains file children, same semantics.
	AllowedFiles *matcher.Set

	// Recursive extends the check to the whole subtree, applying the
	// same allowed sets at every level.
	Recursive bool

	// RecursiveIgnoreChildren prunes descent: directories whose name
	// matches any of these matchers are not recursed into. Pruning
	// only disables descent; the directory entry itself is still
	// evaluated against AllowedDirs.
	RecursiveIgnoreChildren []matcher.Matcher
}

// MoveRule describes how matched children of a parent directory are
// relocated. Only the immediate listing of Parent is scanned.
type MoveRule struct {
	// Name is an optional display name. DisplayName falls back to the
	// parent path when it is empty.
	Name string

	// Parent is the absolute directory whose children are matched.
	Parent string

	// Match is the OR-combined list of matchers selecting children.
	Match []matcher.Matcher

	// To is the absolute destination directory.
	To string

	// ToScript is the optional absolute path of a naming script
	// consulted per matched entry. See pkg/automove.
	ToScript string
}

// DisplayName returns the rule's name, falling back to the parent path.
func (r *MoveRule) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Parent
}

// MatchesEntry reports whether the entry passes the rule's match
// list. An empty list matches every child, so a bare rule moves
// everything under its parent.
func (r *MoveRule) MatchesEntry(name string, kind types.EntryKind) bool {
	if len(r.Match) == 0 {
		return true
	}
	for _, m := range r.Match {
		if m.Matches(name, kind) {
			return true
		}
	}
	return false
}

// RuleSet is the in-memory representation of all configured rules.
type RuleSet struct {
	DirRules  []DirRule
	MoveRules []MoveRule
}

// SortForDisplay orders dir rules by path and move rules by display
// name, giving deterministic report ordering across runs.
func (rs *RuleSet) SortForDisplay() {
	sort.SliceStable(rs.DirRules, func(i, j int) bool {
		return rs.DirRules[i].Path < rs.DirRules[j].Path
	})
	sort.SliceStable(rs.MoveRules, func(i, j int) bool {
		return rs.MoveRules[i].DisplayName() < rs.MoveRules[j].DisplayName()
	})
}

// FilterUnder narrows the rule set to rules whose directory lies under
// parent (or equals it). An empty parent keeps everything.
func (rs *RuleSet) FilterUnder(parent string) RuleSet {
	if parent == "" {
		return *rs
	}
	out := RuleSet{}
	for _, dr := range rs.DirRules {
		if isUnder(dr.Path, parent) {
			out.DirRules = append(out.DirRules, dr)
		}
	}
	for _, mr := range rs.MoveRules {
		if isUnder(mr.Parent, parent) {
			out.MoveRules = append(out.MoveRules, mr)
		}
	}
	return out
}

func isUnder(path, parent string) bool {
	if path == parent {
		return true
	}
	if !strings.HasSuffix(parent, "/") {
		parent += "/"
	}
	return strings.HasPrefix(path, parent)
}
