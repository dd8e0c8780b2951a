package trigger

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// wrapper makes a code fragment independently formattable: a "<?php"
// prologue with a unique marker statement, and optionally a synthetic
// if(1) guard around a bare block. The marker exists purely so the
// prologue can be found and stripped from the formatted result.
type wrapper struct {
	token   string // unique identifier embedded in the marker statement
	guarded bool   // synthetic if(1) guard applied
	indent  string // indentation of the fragment's first line
}

// guardPattern re-matches the synthetic guard in formatted output. A
// formatter typically rewrites "if(1){" as "if (1) {"; both forms match.
var guardPattern = regexp.MustCompile(`(?s)^\s*if\s*\(\s*1\s*\)\s*(\{.*\})\s*$`)

// newWrapper creates a wrapper with a fresh marker.
func newWrapper(guarded bool, indent string) wrapper {
	return wrapper{
		token:   "phpfix_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		guarded: guarded,
		indent:  indent,
	}
}

// marker returns the marker statement embedded in the prologue.
func (w wrapper) marker() string {
	return "$" + w.token + " = 1;"
}

// wrap produces the synthetic file submitted for partial formatting.
func (w wrapper) wrap(fragment string) string {
	if w.guarded {
		fragment = w.indent + "if(1)" + strings.TrimLeft(fragment, " \t")
	}
	return "<?php\n" + w.marker() + "\n" + fragment
}

// unwrap strips the prologue (and the guard, when one was applied) from
// the formatted result. The second return value is false when the marker
// or the guard cannot be found again, in which case the fix is discarded.
func (w wrapper) unwrap(formatted string) (string, bool) {
	i := strings.Index(formatted, w.token)
	if i < 0 {
		return "", false
	}
	nl := strings.IndexByte(formatted[i:], '\n')
	if nl < 0 {
		return "", false
	}
	body := strings.TrimRight(formatted[i+nl+1:], "\n")

	if w.guarded {
		m := guardPattern.FindStringSubmatch(body)
		if m == nil {
			return "", false
		}
		body = w.indent + m[1]
	}
	return body, true
}

// leadingIndent returns the leading whitespace of a line.
func leadingIndent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
