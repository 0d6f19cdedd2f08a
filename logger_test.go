package diagram

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	if debugEnabled() {
		t.Fatal("default logger is enabled")
	}
}

func TestLoggerCopyOnWrite(t *testing.T) {
	buf := captureLogs(t)
	Combine(unitSquare(), Text("x")).Translate(V2(1, 0))

	out := buf.String()
	if !strings.Contains(out, "diagram: copy on write") {
		t.Errorf("missing copy record in %q", out)
	}
	if !strings.Contains(out, "kind=Composite nodes=3") {
		t.Errorf("missing composite copy in %q", out)
	}
	if !strings.Contains(out, "diagram: combine") {
		t.Errorf("missing combine record in %q", out)
	}
}

func TestLoggerMutableDoesNotCopy(t *testing.T) {
	buf := captureLogs(t)
	unitSquare().Mut().Translate(V2(1, 0)).Fill("red")
	if buf.Len() != 0 {
		t.Errorf("got log output %q for in-place edits", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if debugEnabled() {
		t.Error("nil logger didn't restore the default")
	}
	if Logger() == nil {
		t.Error("Logger returned nil")
	}
}
