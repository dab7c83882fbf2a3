// Package automove resolves move rules into concrete move actions and
// executes them.
//
// Resolution is read-only apart from invoking configured naming
// scripts; execution mutates the filesystem strictly sequentially,
// tolerating per-action failure. The force-dry-run configuration rail
// is applied by the caller when computing effectiveDry.
package automove

import (
	"github.com/arthur-debert/dirkeep/pkg/rules"
	"github.com/arthur-debert/dirkeep/pkg/types"
)

// Outcome is the state of a move action. The zero value is Planned so
// freshly resolved actions report correctly under dry runs.
type Outcome int

const (
	// Planned: resolved but not (yet) applied. Final state in dry runs.
	Planned Outcome = iota
	// Moved: the source now lives at the destination.
	Moved
	// SkippedConflict: destination existed and overwriting is
	// disallowed. A deliberate skip, not a failure; nothing was touched.
	SkippedConflict
	// Failed: the script or the filesystem refused. See Action.Err.
	Failed
)

// String returns the outcome name used in reports and logs.
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case SkippedConflict:
		return "skipped (would overwrite)"
	case Failed:
		return "failed"
	default:
		return "planned"
	}
}

// Action is one resolved move: source to destination, annotated with
// its outcome after execution. Actions are never persisted.
type Action struct {
	Source      string
	SourceKind  types.EntryKind
	Destination string
	Outcome     Outcome
	Err         error
}

// RuleResult groups the actions resolved for one move rule, in the
// order the rule's parent directory listed them.
type RuleResult struct {
	Rule    rules.MoveRule
	Actions []Action
	// Err is set when the rule's parent directory is missing or
	// unreadable; the rule then has no actions.
	Err error
}

// Ok reports whether the rule resolved cleanly with nothing to move.
func (r *RuleResult) Ok() bool {
	return r.Err == nil && len(r.Actions) == 0
}

// CountByOutcome tallies the rule's actions per outcome.
func (r *RuleResult) CountByOutcome(o Outcome) int {
	n := 0
	for i := range r.Actions {
		if r.Actions[i].Outcome == o {
			n++
		}
	}
	return n
}

// HasIssues reports whether any result carries an error, a failed
// action, or a skipped conflict. Drives the process exit code.
func HasIssues(results []RuleResult) bool {
	for i := range results {
		if results[i].Err != nil {
			return true
		}
		for _, a := range results[i].Actions {
			if a.Outcome == Failed || a.Outcome == SkippedConflict {
				return true
			}
		}
	}
	return false
}

// TotalActions counts actions across all results.
func TotalActions(results []RuleResult) int {
	n := 0
	for i := range results {
		n += len(results[i].Actions)
	}
	return n
}
