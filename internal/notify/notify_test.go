package notify

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogReporter(&buf)

	r.Status("formatting")
	r.Error("boom")
	r.Log("ran %d fixers", 3)

	out := buf.String()
	if !strings.Contains(out, "status: formatting") {
		t.Errorf("missing status line: %q", out)
	}
	if !strings.Contains(out, "error: boom") {
		t.Errorf("missing error line: %q", out)
	}
	if !strings.Contains(out, "ran 3 fixers") {
		t.Errorf("missing log line: %q", out)
	}
}

func TestLogReporterErrorActions(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogReporter(&buf)

	if picked := r.Error("executable missing", "Use bundled", "Ignore"); picked != "" {
		t.Errorf("log surface picked an action: %q", picked)
	}
	out := buf.String()
	if !strings.Contains(out, "error: executable missing") || !strings.Contains(out, "Use bundled") {
		t.Errorf("actions not logged: %q", out)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.Status("fixed")
	if picked := r.Error("boom", "Retry"); picked != "" {
		t.Errorf("recorder picked an action: %q", picked)
	}
	r.Log("ran %d fixers", 2)

	lines := r.Drain()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %v", len(lines), lines)
	}
	if lines[0] != "status: fixed" {
		t.Errorf("status line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "error: boom") || !strings.Contains(lines[1], "Retry") {
		t.Errorf("error line: %q", lines[1])
	}
	if lines[2] != "ran 2 fixers" {
		t.Errorf("log line: %q", lines[2])
	}

	if again := r.Drain(); len(again) != 0 {
		t.Errorf("drain did not clear the buffer: %v", again)
	}
}

func TestQuietDropsStatusAndError(t *testing.T) {
	var buf bytes.Buffer
	r := Quiet(NewLogReporter(&buf))

	r.Status("should not appear")
	r.Error("should not appear")
	r.Log("kept")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("quiet reporter leaked status/error: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("quiet reporter dropped log output: %q", out)
	}
}

func TestNop(t *testing.T) {
	// Must not panic.
	Nop.Status("x")
	Nop.Error("x")
	Nop.Log("x %d", 1)
}
