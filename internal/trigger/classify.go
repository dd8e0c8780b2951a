package trigger

import (
	"fmt"
	"regexp"
)

// LineClass tags a line of PHP source for the bracket heuristic.
type LineClass int

const (
	// ClassNone matches nothing of interest.
	ClassNone LineClass = iota

	// ClassHeader is a statement header without an opening brace:
	// control-flow keywords, function signatures, type declarations.
	ClassHeader

	// ClassHeaderOpen is a statement header whose line ends with the
	// opening brace.
	ClassHeaderOpen

	// ClassBraceOnly is a line holding only an opening brace.
	ClassBraceOnly
)

// String returns the class name.
func (c LineClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassHeader:
		return "header"
	case ClassHeaderOpen:
		return "header-open"
	case ClassBraceOnly:
		return "brace-only"
	default:
		return fmt.Sprintf("unknown(%d)", int(c))
	}
}

// headerBody lists the statement-header shapes the bracket heuristic
// anchors on: control flow, function signatures, class-like declarations,
// and the bare do/try/else keywords.
const headerBody = `(?:else\s+)?if\s*\(.*\)|` +
	`for(?:each)?\s*\(.*\)|` +
	`while\s*\(.*\)|` +
	`switch\s*\(.*\)|` +
	`(?:(?:abstract|final|public|protected|private|static)\s+)*function\s+&?\w+\s*\(.*\)(?:\s*:\s*\??[\w\\|]+)?|` +
	`(?:(?:abstract|final)\s+)?(?:class|trait|interface)\s+\w+[^{]*|` +
	`do|try|else`

var (
	braceOnlyPattern  = regexp.MustCompile(`^\s*\{\s*$`)
	headerPattern     = regexp.MustCompile(`^\s*(?:` + headerBody + `)\s*$`)
	headerOpenPattern = regexp.MustCompile(`^\s*(?:` + headerBody + `)\s*\{\s*$`)
)

// Classify tags a single line of text. It is a pure function over the
// line; no document context is consulted.
func Classify(line string) LineClass {
	switch {
	case braceOnlyPattern.MatchString(line):
		return ClassBraceOnly
	case headerOpenPattern.MatchString(line):
		return ClassHeaderOpen
	case headerPattern.MatchString(line):
		return ClassHeader
	default:
		return ClassNone
	}
}
