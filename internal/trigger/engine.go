package trigger

import (
	"context"
	"strings"

	"github.com/dshills/phpfix/internal/config"
	"github.com/dshills/phpfix/internal/editor"
	"github.com/dshills/phpfix/internal/exclude"
	"github.com/dshills/phpfix/internal/format"
	"github.com/dshills/phpfix/internal/notify"
)

// minSemicolonLine is the minimum current-line length for the semicolon
// trigger, guarding against formatting near-empty lines.
const minSemicolonLine = 5

// minBracketJump is the minimum backward distance of a jump-to-bracket
// before the bracket heuristic trusts it.
const minBracketJump = 3

// PartialFormatter is the slice of the whole-document formatter the
// trigger engine needs. *format.Formatter implements it.
type PartialFormatter interface {
	Format(ctx context.Context, text, docPath string, opts format.Options) (string, error)
	Running() bool
}

// Engine dispatches keystroke events to the bracket and semicolon
// heuristics.
type Engine struct {
	cfg       *config.Manager
	formatter PartialFormatter
	reporter  notify.Reporter
}

// Option configures an Engine.
type Option func(*Engine)

// WithReporter sets the log reporter. Defaults to notify.Nop.
func WithReporter(r notify.Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// New creates a trigger engine over the given formatter.
func New(cfg *config.Manager, formatter PartialFormatter, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		formatter: formatter,
		reporter:  notify.Nop,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnDidType handles a completed text insertion. typed is the inserted
// text; doc reflects the document after the edit, with the cursor at the
// end of the insertion. Returns true when a formatting edit was applied.
func (e *Engine) OnDidType(ctx context.Context, doc editor.Document, typed string) bool {
	snap := e.cfg.Current()

	var fix func(context.Context, editor.Document) bool
	switch {
	case isClosingBraceEdit(typed):
		if !snap.AutoFixByBracket {
			return false
		}
		fix = e.bracketFix
	case typed == ";":
		if !snap.AutoFixBySemicolon {
			return false
		}
		fix = e.semicolonFix
	default:
		return false
	}

	if e.formatter.Running() {
		return false
	}
	if exclude.Match(snap.Exclude, doc.Path()) {
		return false
	}
	return fix(ctx, doc)
}

// bracketFix reformats the block closed by a just-typed brace.
func (e *Engine) bracketFix(ctx context.Context, doc editor.Document) bool {
	orig := doc.Selection()
	pos := orig.Head

	doc.JumpToBracket()
	landed := doc.Selection().Head
	if landed == pos {
		// No matching bracket.
		return false
	}
	// False-positive guard: a tiny jump, or a landing that is not an
	// opening brace, means the host matched something unrelated.
	if pos-landed < minBracketJump || doc.TextRange(editor.NewRange(landed, landed+1)) != "{" {
		doc.SetSelection(orig)
		return false
	}
	doc.SetSelection(orig)

	landLine := int(doc.OffsetToPoint(landed).Line)
	lineText := doc.LineText(landLine)

	anchorLine := landLine
	guarded := false
	switch Classify(lineText) {
	case ClassBraceOnly:
		if landLine > 0 && Classify(doc.LineText(landLine-1)) == ClassHeader {
			anchorLine = landLine - 1
		} else {
			guarded = true
		}
	case ClassHeaderOpen:
		// Anchor at the landing line itself.
	default:
		guarded = true
	}

	anchor := doc.LineRange(anchorLine).Start
	candidate := doc.TextRange(editor.NewRange(anchor, pos))
	indent := leadingIndent(doc.LineText(anchorLine))

	return e.submit(ctx, doc, editor.NewRange(anchor, pos), candidate, newWrapper(guarded, indent))
}

// semicolonFix reformats the current line after a typed semicolon.
func (e *Engine) semicolonFix(ctx context.Context, doc editor.Document) bool {
	line := int(doc.OffsetToPoint(doc.Selection().Head).Line)
	text := doc.LineText(line)
	if len(text) < minSemicolonLine {
		return false
	}
	return e.submit(ctx, doc, doc.LineRange(line), text, newWrapper(false, ""))
}

// submit runs a partial format over the candidate range and applies the
// unwrapped result when it differs. Errors are logged and swallowed.
func (e *Engine) submit(ctx context.Context, doc editor.Document, r editor.Range, candidate string, w wrapper) bool {
	formatted, err := e.formatter.Format(ctx, w.wrap(candidate), doc.Path(), format.Options{Partial: true})
	if err != nil {
		e.reporter.Log("partial format: %v", err)
		return false
	}

	body, ok := w.unwrap(formatted)
	if !ok || body == candidate {
		return false
	}

	if err := doc.Replace([]editor.Edit{{Range: r, Text: body}}); err != nil {
		e.reporter.Log("applying partial format: %v", err)
		return false
	}
	doc.SetSelection(doc.Selection().Collapse())
	return true
}

// isClosingBraceEdit reports whether the insertion is a closing-brace-only
// edit (the brace possibly surrounded by auto-inserted whitespace).
func isClosingBraceEdit(typed string) bool {
	return strings.TrimSpace(typed) == "}" && typed != ""
}
