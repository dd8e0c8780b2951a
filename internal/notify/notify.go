// Package notify abstracts how formatting outcomes are presented.
//
// Whole-document operations surface a status message through the host;
// keystroke-triggered partial operations must stay silent and only write to
// the log. The Reporter interface covers both: hosts plug in their own
// status/prompt surfaces, Quiet wraps any reporter so that only Log calls
// pass through.
package notify

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Reporter presents formatting status, errors, and log output.
type Reporter interface {
	// Status shows a transient status message.
	Status(msg string)

	// Error surfaces an error message with optional follow-up actions.
	// It returns the action the user picked, or "" when the message was
	// dismissed or the surface is not interactive.
	Error(msg string, actions ...string) string

	// Log writes a line to the output log.
	Log(format string, args ...any)
}

// LogReporter writes everything to a single log writer.
// Status and Error lines are prefixed so they stand out in the log.
type LogReporter struct {
	l *log.Logger
}

// NewLogReporter creates a reporter writing to w.
func NewLogReporter(w io.Writer) *LogReporter {
	return &LogReporter{l: log.New(w, "", log.LstdFlags)}
}

// Status logs a status message.
func (r *LogReporter) Status(msg string) {
	r.l.Printf("status: %s", msg)
}

// Error logs an error message. Offered actions are logged but never
// chosen; a log is not an interactive surface.
func (r *LogReporter) Error(msg string, actions ...string) string {
	if len(actions) > 0 {
		r.l.Printf("error: %s (actions: %v)", msg, actions)
	} else {
		r.l.Printf("error: %s", msg)
	}
	return ""
}

// Log writes a formatted line.
func (r *LogReporter) Log(format string, args ...any) {
	r.l.Printf(format, args...)
}

// Recorder buffers all output in memory so the host can show the log on
// demand. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Status records a status line.
func (r *Recorder) Status(msg string) {
	r.append("status: " + msg)
}

// Error records an error line and reports no action chosen.
func (r *Recorder) Error(msg string, actions ...string) string {
	if len(actions) > 0 {
		r.append(fmt.Sprintf("error: %s (actions: %v)", msg, actions))
	} else {
		r.append("error: " + msg)
	}
	return ""
}

// Log records a formatted line.
func (r *Recorder) Log(format string, args ...any) {
	r.append(fmt.Sprintf(format, args...))
}

// Drain returns the recorded lines and clears the buffer.
func (r *Recorder) Drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := r.lines
	r.lines = nil
	return lines
}

func (r *Recorder) append(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

// quietReporter suppresses status and error presentation but keeps logging.
type quietReporter struct {
	inner Reporter
}

// Quiet wraps r so that Status and Error are dropped while Log still
// reaches the underlying reporter. Used for partial-mode operations.
func Quiet(r Reporter) Reporter {
	return quietReporter{inner: r}
}

func (q quietReporter) Status(string) {}

func (q quietReporter) Error(string, ...string) string { return "" }

func (q quietReporter) Log(format string, args ...any) {
	q.inner.Log(format, args...)
}

// nopReporter discards everything.
type nopReporter struct{}

func (nopReporter) Status(string)                  {}
func (nopReporter) Error(string, ...string) string { return "" }
func (nopReporter) Log(string, ...any)             {}

// Nop is a reporter that discards all output.
var Nop Reporter = nopReporter{}
