package runner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/phpfix/internal/config"
)

// workspaceConfigDir is the hidden workspace subdirectory searched for
// config candidates before the workspace root itself.
const workspaceConfigDir = ".vscode"

// Target identifies one formatting invocation. Constructed fresh per call
// and immutable once built.
type Target struct {
	// URI is the original document path; empty for untitled documents.
	URI string

	// ScratchPath is the temporary file submitted to the formatter.
	ScratchPath string

	// WorkspaceRoot is the workspace directory config candidates are
	// searched under; empty when no workspace is open.
	WorkspaceRoot string

	// WorkDir is the working directory for the process; empty means the
	// process inherits the current directory.
	WorkDir string
}

// BuildArgs constructs the formatter argument list for a snapshot and
// target. The ordering is deterministic; the only filesystem access is
// the existence checks during config-candidate discovery.
func BuildArgs(snap config.Snapshot, t Target) []string {
	args := []string{"fix", "--using-cache=no", "--format=json"}

	// The interpreter needs the archive as its first positional argument.
	if snap.UsesPhar() {
		args = append([]string{snap.PharPath}, args...)
	}

	// A discovered config file and an explicit rule set are mutually
	// exclusive; the config file wins.
	if cfg := findConfigFile(snap, t.WorkspaceRoot); cfg != "" {
		args = append(args, "--config="+cfg)
	} else if snap.Rules != "" {
		args = append(args, "--rules="+snap.Rules)
	}

	if snap.AllowRisky {
		args = append(args, "--allow-risky=yes")
	}

	mode := snap.PathMode
	if underTempDir(t.ScratchPath) {
		// Scratch content does not belong to a real project path.
		mode = "override"
	}
	args = append(args, "--path-mode="+mode, t.ScratchPath)

	return args
}

// findConfigFile returns the first existing config candidate, or "".
func findConfigFile(snap config.Snapshot, workspaceRoot string) string {
	for _, path := range candidatePaths(snap.ConfigCandidates, workspaceRoot, snap.HomeDir) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// candidatePaths expands the candidate name list into the full list of
// paths to probe, in search order. Absolute candidates are probed as-is;
// relative ones are expanded against the workspace config subdirectory and
// then the workspace root.
func candidatePaths(candidates []string, workspaceRoot, homeDir string) []string {
	var out []string
	for _, c := range candidates {
		c = config.ExpandHome(c, homeDir)
		if filepath.IsAbs(c) {
			out = append(out, c)
			continue
		}
		if workspaceRoot == "" {
			continue
		}
		out = append(out,
			filepath.Join(workspaceRoot, workspaceConfigDir, c),
			filepath.Join(workspaceRoot, c),
		)
	}
	return out
}

// underTempDir reports whether path resides under the shared temp
// directory.
func underTempDir(path string) bool {
	tmp := filepath.Clean(os.TempDir())
	path = filepath.Clean(path)
	return path == tmp || strings.HasPrefix(path, tmp+string(filepath.Separator))
}
