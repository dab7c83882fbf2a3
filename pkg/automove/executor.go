package automove

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/logging"
	"github.com/arthur-debert/dirkeep/pkg/types"
)

// Executor applies resolved move actions. Moves run strictly
// sequentially in resolver order so there are no destination races
// within a run and results map predictably back to input actions.
type Executor struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewExecutor creates an executor on the given filesystem.
func NewExecutor(fsys types.FS) *Executor {
	return &Executor{
		fs:     fsys,
		logger: logging.GetLogger("automove.executor"),
	}
}

// ExecuteAll runs Execute over each rule result's actions in place
// and returns the annotated results.
func (e *Executor) ExecuteAll(results []RuleResult, effectiveDry, allowOverwrite bool) []RuleResult {
	for i := range results {
		results[i].Actions = e.Execute(results[i].Actions, effectiveDry, allowOverwrite)
	}
	return results
}

// Execute performs or simulates the given actions and returns them
// annotated with outcomes. effectiveDry is the OR of the user's --dry
// flag and the force-dry-run configuration rail; when true nothing on
// the filesystem changes. One failing action never aborts the batch.
func (e *Executor) Execute(actions []Action, effectiveDry, allowOverwrite bool) []Action {
	out := make([]Action, len(actions))
	copy(out, actions)

	for i := range out {
		action := &out[i]
		if action.Outcome == Failed {
			// Resolution already failed this one (script error).
			continue
		}

		if effectiveDry {
			action.Outcome = Planned
			continue
		}

		e.executeOne(action, allowOverwrite)

		e.logger.Debug().
			Str("source", action.Source).
			Str("destination", action.Destination).
			Str("outcome", action.Outcome.String()).
			Msg("Action executed")
	}

	return out
}

func (e *Executor) executeOne(action *Action, allowOverwrite bool) {
	if _, err := e.fs.Lstat(action.Destination); err == nil {
		if !allowOverwrite {
			action.Outcome = SkippedConflict
			action.Err = errors.Newf(errors.ErrOverwriteBlocked,
				"moving to %s would overwrite it", action.Destination)
			return
		}
	} else if !os.IsNotExist(err) {
		action.Outcome = Failed
		action.Err = errors.Wrapf(err, errors.ErrMoveFailed,
			"cannot check overwrite status for %s", action.Destination)
		return
	}

	parent := filepath.Dir(action.Destination)
	if err := e.fs.MkdirAll(parent, 0755); err != nil {
		action.Outcome = Failed
		action.Err = errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create directory %s", parent)
		return
	}

	if err := e.move(action.Source, action.Destination); err != nil {
		action.Outcome = Failed
		action.Err = err
		return
	}
	action.Outcome = Moved
}

// move renames, falling back to copy-then-delete when the rename
// crosses a filesystem boundary.
func (e *Executor) move(source, destination string) error {
	err := e.fs.Rename(source, destination)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return errors.Wrapf(err, errors.ErrMoveFailed,
			"cannot move %s to %s", source, destination)
	}

	if err := e.copyAll(source, destination); err != nil {
		return err
	}
	if err := e.fs.RemoveAll(source); err != nil {
		return errors.Wrapf(err, errors.ErrMoveFailed,
			"moved %s to %s but cannot remove source", source, destination)
	}
	return nil
}

// copyAll copies a file or directory tree across filesystems,
// preserving modes.
func (e *Executor) copyAll(source, destination string) error {
	info, err := e.fs.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrMoveFailed, "cannot stat %s", source)
	}

	if !info.IsDir() {
		data, err := e.fs.ReadFile(source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrMoveFailed, "cannot read %s", source)
		}
		if err := e.fs.WriteFile(destination, data, info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrMoveFailed, "cannot write %s", destination)
		}
		return nil
	}

	if err := e.fs.MkdirAll(destination, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", destination)
	}
	entries, err := e.fs.ReadDir(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrMoveFailed, "cannot list %s", source)
	}
	for _, entry := range entries {
		if err := e.copyAll(
			filepath.Join(source, entry.Name()),
			filepath.Join(destination, entry.Name()),
		); err != nil {
			return err
		}
	}
	return nil
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if stderrors.As(err, &linkErr) {
		return stderrors.Is(linkErr.Err, syscall.EXDEV)
	}
	var pathErr *fs.PathError
	if stderrors.As(err, &pathErr) {
		return stderrors.Is(pathErr.Err, syscall.EXDEV)
	}
	return stderrors.Is(err, syscall.EXDEV)
}
