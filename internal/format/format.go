package format

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/dshills/phpfix/internal/config"
	"github.com/dshills/phpfix/internal/notify"
	"github.com/dshills/phpfix/internal/runner"
)

// partialScratchName is the fixed scratch filename for partial-mode calls,
// so rapid successive keystroke triggers reuse one file instead of
// littering the temp directory.
const partialScratchName = "phpfix-partial.php"

// Invoker runs the external formatter. *runner.Runner implements it; tests
// substitute stubs.
type Invoker interface {
	Invoke(ctx context.Context, snap config.Snapshot, target runner.Target) (runner.Outcome, error)
}

// Options selects the formatting mode.
type Options struct {
	// Diff keeps the scratch file and returns its path instead of the
	// formatted content, for the caller to present a comparison view.
	Diff bool

	// Partial marks a synthetic-fragment invocation from a keystroke
	// trigger: a fixed scratch name, and no user-visible status.
	Partial bool
}

// Formatter formats document text through the external formatter.
type Formatter struct {
	cfg           *config.Manager
	invoker       Invoker
	reporter      notify.Reporter
	workspaceRoot string
	running       atomic.Bool
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithInvoker sets the process invoker. Defaults to runner.New().
func WithInvoker(inv Invoker) Option {
	return func(f *Formatter) { f.invoker = inv }
}

// WithReporter sets the status/log reporter. Defaults to notify.Nop.
func WithReporter(r notify.Reporter) Option {
	return func(f *Formatter) { f.reporter = r }
}

// WithWorkspaceRoot sets the workspace directory used for config-file
// discovery.
func WithWorkspaceRoot(root string) Option {
	return func(f *Formatter) { f.workspaceRoot = root }
}

// New creates a Formatter bound to the given configuration manager.
func New(cfg *config.Manager, opts ...Option) *Formatter {
	f := &Formatter{
		cfg:      cfg,
		invoker:  runner.New(),
		reporter: notify.Nop,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Running reports whether a formatting operation is in flight. The flag is
// advisory: it suppresses trigger re-entrancy but is not a hard mutex.
func (f *Formatter) Running() bool {
	return f.running.Load()
}

// Format formats text belonging to the document at docPath (empty for
// untitled documents).
//
// In diff mode the return value is the scratch file path and the scratch
// file is kept for the caller's comparison view. Otherwise the return
// value is the formatted text and the scratch file is deleted on every
// exit path, best effort.
func (f *Formatter) Format(ctx context.Context, text, docPath string, opts Options) (string, error) {
	f.running.Store(true)
	defer f.running.Store(false)

	rep := f.reporter
	if opts.Partial {
		rep = notify.Quiet(rep)
	}

	scratch := f.scratchPath(docPath, opts.Partial)
	if err := os.WriteFile(scratch, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("writing scratch file: %w", err)
	}
	if !opts.Diff {
		defer os.Remove(scratch)
	}

	snap := f.cfg.Current()
	target := runner.Target{
		URI:           docPath,
		ScratchPath:   scratch,
		WorkspaceRoot: f.workspaceRoot,
	}
	if docPath != "" {
		target.WorkDir = filepath.Dir(docPath)
	}

	outcome, err := f.invoker.Invoke(ctx, snap, target)
	if err != nil {
		return "", f.reportFailure(rep, err)
	}

	if opts.Diff {
		rep.Status("php-cs-fixer: diff ready")
		return scratch, nil
	}

	if outcome == runner.OutcomeChanged {
		fixed, rerr := os.ReadFile(scratch)
		if rerr != nil {
			return "", fmt.Errorf("reading formatted result: %w", rerr)
		}
		rep.Status("php-cs-fixer: fixed")
		return string(fixed), nil
	}

	rep.Status("php-cs-fixer: nothing to fix")
	return text, nil
}

// reportFailure surfaces an invocation failure and applies the
// missing-executable remediation. The error is always returned to the
// caller as well.
func (f *Formatter) reportFailure(rep notify.Reporter, err error) error {
	if errors.Is(err, runner.ErrExecutableNotFound) {
		snap := f.cfg.UseBundledPhar()
		rep.Error(fmt.Sprintf(
			"php-cs-fixer executable not found; configuration now uses the bundled archive %s. Retry formatting.",
			snap.PharPath))
		rep.Log("executable missing, switched to bundled archive: %v", err)
		return err
	}

	var exitErr *runner.ExitError
	var toolErr *runner.ToolError
	switch {
	case errors.As(err, &exitErr):
		rep.Status(exitErr.Message)
	case errors.As(err, &toolErr):
		rep.Status(toolErr.Message)
	}
	rep.Log("format failed: %v", err)
	return err
}

// scratchPath derives the scratch file path from the document basename.
// Partial mode uses a fixed alternate name.
func (f *Formatter) scratchPath(docPath string, partial bool) string {
	name := "untitled.php"
	if partial {
		name = partialScratchName
	} else if docPath != "" {
		name = filepath.Base(docPath)
	}
	return filepath.Join(os.TempDir(), name)
}
