package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/dshills/phpfix/internal/config"
)

// Runner starts formatter processes and interprets their results.
// The zero value is usable; New exists for symmetry with the rest of the
// engine's constructors.
type Runner struct{}

// New creates a Runner.
func New() *Runner {
	return &Runner{}
}

// Invoke runs the formatter against the target and classifies the result.
//
// The argument list comes from BuildArgs; interpreter arguments from the
// snapshot precede it. Failure to start the process because the executable
// is missing surfaces as ErrExecutableNotFound so the caller can fall back
// to the bundled archive.
func (r *Runner) Invoke(ctx context.Context, snap config.Snapshot, target Target) (Outcome, error) {
	args := BuildArgs(snap, target)
	full := make([]string, 0, len(snap.ExecArgs)+len(args))
	full = append(full, snap.ExecArgs...)
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, snap.Executable, full...)
	if target.WorkDir != "" {
		cmd.Dir = target.WorkDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return OutcomeUnchanged, mapExit(exitErr.ExitCode(), stderr.String())
		}
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return OutcomeUnchanged, fmt.Errorf("%w: %s", ErrExecutableNotFound, snap.Executable)
		}
		return OutcomeUnchanged, fmt.Errorf("starting %s: %w", snap.Executable, err)
	}

	return interpret(stdout.Bytes(), stderr.String())
}
