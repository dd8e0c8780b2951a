package runner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Outcome classifies a successful process exit.
type Outcome int

const (
	// OutcomeUnchanged indicates the formatter made no changes; the
	// original text stands.
	OutcomeUnchanged Outcome = iota

	// OutcomeChanged indicates the scratch file was modified in place;
	// it must be re-read as the authoritative result.
	OutcomeChanged
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeChanged:
		return "changed"
	default:
		return fmt.Sprintf("unknown(%d)", int(o))
	}
}

// fatalPattern extracts PHP fatal error text from stderr on exit code 255.
var fatalPattern = regexp.MustCompile(`(?m)(?:Fatal error:|Parse error: Uncaught Error:).*$`)

// interpret classifies the output of a zero-exit process run.
//
// The manifest's changed-file list decides between changed and unchanged;
// a zero-change run with more than one stderr line is a tool-reported
// failure surfaced as a ToolError.
func interpret(stdout []byte, stderr string) (Outcome, error) {
	if !gjson.ValidBytes(stdout) {
		return OutcomeUnchanged, fmt.Errorf("%w: %s", ErrBadManifest, snippet(stdout))
	}

	files := gjson.GetBytes(stdout, "files")
	if files.IsArray() && len(files.Array()) > 0 {
		return OutcomeChanged, nil
	}

	lines := nonEmptyLines(stderr)
	if len(lines) > 1 {
		return OutcomeUnchanged, &ToolError{Message: firstInformative(lines)}
	}
	return OutcomeUnchanged, nil
}

// mapExit converts a nonzero exit code into its fixed category message.
func mapExit(code int, stderr string) *ExitError {
	switch code {
	case 1:
		return &ExitError{Code: code, Message: "General error (or PHP minimal requirement not matched)."}
	case 16:
		return &ExitError{Code: code, Message: "Configuration error of the application."}
	case 32:
		return &ExitError{Code: code, Message: "Configuration error of a Fixer."}
	case 64:
		return &ExitError{Code: code, Message: "Exception raised within the application."}
	case 255:
		if m := fatalPattern.FindString(stderr); m != "" {
			return &ExitError{Code: code, Message: m}
		}
		return &ExitError{Code: code, Message: "PHP fatal error."}
	default:
		msg := strings.TrimSpace(stderr)
		if msg == "" {
			msg = fmt.Sprintf("unexpected exit code %d", code)
		}
		return &ExitError{Code: code, Message: msg}
	}
}

// nonEmptyLines splits stderr into trimmed, non-empty lines.
func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// firstInformative returns the first stderr line that is not a loader
// banner, falling back to the first line.
func firstInformative(lines []string) string {
	for _, line := range lines {
		if strings.HasPrefix(line, "Loaded config") {
			continue
		}
		if strings.HasPrefix(line, "PHP CS Fixer") {
			continue
		}
		return line
	}
	return lines[0]
}

func snippet(b []byte) string {
	const max = 120
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	if s == "" {
		return "(empty stdout)"
	}
	return s
}
