// Package checker walks configured directories and classifies their
// entries as allowed or misplaced according to the directory rules.
//
// Scanning is read-only. Each rule is evaluated independently: a
// missing or unreadable directory is recorded as a rule-level error
// and never aborts the run.
package checker

import (
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/logging"
	"github.com/arthur-debert/dirkeep/pkg/rules"
	"github.com/arthur-debert/dirkeep/pkg/types"
)

// Entry is one misplaced directory child.
type Entry struct {
	// Path is the absolute path of the misplaced entry.
	Path string
	// Kind is the entry's filesystem kind, symlinks resolved.
	Kind types.EntryKind
}

// RuleReport collects the outcome of scanning one directory rule.
type RuleReport struct {
	Rule      rules.DirRule
	Misplaced []Entry
	// Errs records scan-level problems: the rule's own directory being
	// missing or unreadable, or unreadable subdirectories during
	// recursion. Never per-entry misplacements.
	Errs []error
}

// Ok reports whether the rule scanned cleanly with nothing misplaced.
func (r *RuleReport) Ok() bool {
	return len(r.Misplaced) == 0 && len(r.Errs) == 0
}

// FilterKind returns the misplaced entries of one kind, directories
// when dirs is true, files otherwise.
func (r *RuleReport) FilterKind(dirs bool) []Entry {
	var out []Entry
	for _, e := range r.Misplaced {
		if (e.Kind == types.KindDirectory) == dirs {
			out = append(out, e)
		}
	}
	return out
}

// Report is the ordered scan result, one report per rule in rule-set
// order.
type Report struct {
	Rules []RuleReport
}

// HasIssues reports whether any rule found misplaced entries or hit a
// scan error. Drives the process exit code.
func (r *Report) HasIssues() bool {
	for i := range r.Rules {
		if !r.Rules[i].Ok() {
			return true
		}
	}
	return false
}

// TotalMisplaced counts misplaced entries across all rules.
func (r *Report) TotalMisplaced() int {
	n := 0
	for i := range r.Rules {
		n += len(r.Rules[i].Misplaced)
	}
	return n
}

// Scanner evaluates directory rules against the filesystem.
type Scanner struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a scanner on the given filesystem.
func New(fsys types.FS) *Scanner {
	return &Scanner{
		fs:     fsys,
		logger: logging.GetLogger("checker"),
	}
}

// Scan evaluates every rule and returns the per-rule reports in rule
// order. Entries within a rule appear in filesystem listing order.
func (s *Scanner) Scan(dirRules []rules.DirRule) Report {
	report := Report{Rules: make([]RuleReport, 0, len(dirRules))}
	for _, rule := range dirRules {
		report.Rules = append(report.Rules, s.scanRule(rule))
	}
	s.logger.Debug().
		Int("rules", len(dirRules)).
		Int("misplaced", report.TotalMisplaced()).
		Msg("Scan complete")
	return report
}

// scanRule walks one rule's directory with an explicit work list so
// deep trees cannot overflow the call stack.
func (s *Scanner) scanRule(rule rules.DirRule) RuleReport {
	result := RuleReport{Rule: rule}

	info, err := s.fs.Stat(rule.Path)
	if err != nil {
		result.Errs = append(result.Errs, errors.Wrapf(err, errors.ErrPathAccess,
			"cannot access %s", rule.Path))
		return result
	}
	if !info.IsDir() {
		result.Errs = append(result.Errs, errors.Newf(errors.ErrNotDirectory,
			"%s is not a directory", rule.Path))
		return result
	}

	work := []string{rule.Path}
	for len(work) > 0 {
		dir := work[0]
		work = work[1:]

		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			result.Errs = append(result.Errs, errors.Wrapf(err, errors.ErrPathAccess,
				"cannot list %s", dir))
			continue
		}

		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			kind := s.entryKind(entry, full)

			allowed := rule.AllowedFiles
			if kind == types.KindDirectory {
				allowed = rule.AllowedDirs
			}
			if !allowed.Allows(entry.Name(), kind) {
				result.Misplaced = append(result.Misplaced, Entry{Path: full, Kind: kind})
			}

			// Pruning only disables descent; the entry above was still
			// evaluated like any other child.
			if rule.Recursive && kind == types.KindDirectory && !s.pruned(rule, entry.Name()) {
				work = append(work, full)
			}
		}
	}

	return result
}

func (s *Scanner) pruned(rule rules.DirRule, name string) bool {
	for _, m := range rule.RecursiveIgnoreChildren {
		if m.Matches(name, types.KindDirectory) {
			return true
		}
	}
	return false
}

// entryKind classifies a directory entry, following symlinks so a
// link to a directory is treated as a directory.
func (s *Scanner) entryKind(entry fs.DirEntry, full string) types.EntryKind {
	if entry.Type()&fs.ModeSymlink != 0 {
		if info, err := s.fs.Stat(full); err == nil && info.IsDir() {
			return types.KindDirectory
		}
		return types.KindFile
	}
	if entry.IsDir() {
		return types.KindDirectory
	}
	return types.KindFile
}
