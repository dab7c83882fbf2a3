package automove

import (
	"os/exec"
	"strings"

	"github.com/arthur-debert/dirkeep/pkg/errors"
)

// ScriptRunner is the narrow boundary to external naming scripts: it
// takes the entry's absolute source path and returns the destination
// filename the script printed. Tests substitute a fake so the
// resolver's logic stays pure.
type ScriptRunner interface {
	Run(script, sourcePath string) (string, error)
}

// execRunner invokes naming scripts as real subprocesses, passing the
// source path as the sole argument and capturing trimmed stdout.
type execRunner struct{}

// NewExecScriptRunner returns the production ScriptRunner.
func NewExecScriptRunner() ScriptRunner {
	return execRunner{}
}

func (execRunner) Run(script, sourcePath string) (string, error) {
	out, err := exec.Command(script, sourcePath).Output()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrScriptFailed,
			"naming script %s failed for %s", script, sourcePath)
	}
	name := strings.TrimSpace(string(out))
	if name == "" {
		return "", errors.Newf(errors.ErrScriptOutput,
			"naming script %s printed nothing for %s", script, sourcePath)
	}
	return name, nil
}
