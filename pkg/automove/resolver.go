package automove

import (
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/logging"
	"github.com/arthur-debert/dirkeep/pkg/rules"
	"github.com/arthur-debert/dirkeep/pkg/types"
)

// Resolver computes move actions from move rules. It reads directory
// listings and, when a rule configures a naming script, invokes it;
// it never renames or deletes anything.
type Resolver struct {
	fs     types.FS
	script ScriptRunner
	logger zerolog.Logger
}

// NewResolver creates a resolver using the real script runner.
func NewResolver(fsys types.FS) *Resolver {
	return NewResolverWithScript(fsys, NewExecScriptRunner())
}

// NewResolverWithScript creates a resolver with a custom script
// runner, used by tests to avoid spawning processes.
func NewResolverWithScript(fsys types.FS, script ScriptRunner) *Resolver {
	return &Resolver{
		fs:     fsys,
		script: script,
		logger: logging.GetLogger("automove.resolver"),
	}
}

// Resolve evaluates every move rule in order and returns one result
// per rule. Only the immediate listing of each rule's parent is
// scanned; directories match as whole entries and are never entered.
func (r *Resolver) Resolve(moveRules []rules.MoveRule) []RuleResult {
	results := make([]RuleResult, 0, len(moveRules))
	for _, rule := range moveRules {
		results = append(results, r.resolveRule(rule))
	}
	r.logger.Debug().
		Int("rules", len(moveRules)).
		Int("actions", TotalActions(results)).
		Msg("Resolution complete")
	return results
}

func (r *Resolver) resolveRule(rule rules.MoveRule) RuleResult {
	result := RuleResult{Rule: rule}

	entries, err := r.fs.ReadDir(rule.Parent)
	if err != nil {
		result.Err = errors.Wrapf(err, errors.ErrPathAccess,
			"cannot list %s", rule.Parent)
		return result
	}

	for _, entry := range entries {
		source := filepath.Join(rule.Parent, entry.Name())
		kind := r.entryKind(entry, source)

		if !rule.MatchesEntry(entry.Name(), kind) {
			continue
		}

		action := Action{Source: source, SourceKind: kind}

		destName := entry.Name()
		if rule.ToScript != "" {
			destName, err = r.script.Run(rule.ToScript, source)
			if err != nil {
				action.Outcome = Failed
				action.Err = err
				result.Actions = append(result.Actions, action)
				continue
			}
		}

		if filepath.IsAbs(destName) {
			// An absolute script result is the destination verbatim.
			action.Destination = filepath.Clean(destName)
		} else {
			action.Destination = filepath.Join(rule.To, destName)
		}

		// Same source and destination is a no-op, not even Planned.
		if action.Destination == action.Source {
			continue
		}

		result.Actions = append(result.Actions, action)
	}

	return result
}

// CountMatches counts entries the move rules would act on, without
// computing destinations or invoking naming scripts. Used for the
// check report's auto-move hint.
func (r *Resolver) CountMatches(moveRules []rules.MoveRule) int {
	count := 0
	for _, rule := range moveRules {
		entries, err := r.fs.ReadDir(rule.Parent)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			full := filepath.Join(rule.Parent, entry.Name())
			if rule.MatchesEntry(entry.Name(), r.entryKind(entry, full)) {
				count++
			}
		}
	}
	return count
}

func (r *Resolver) entryKind(entry fs.DirEntry, full string) types.EntryKind {
	if entry.Type()&fs.ModeSymlink != 0 {
		if info, err := r.fs.Stat(full); err == nil && info.IsDir() {
			return types.KindDirectory
		}
		return types.KindFile
	}
	if entry.IsDir() {
		return types.KindDirectory
	}
	return types.KindFile
}
