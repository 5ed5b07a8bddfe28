package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf))
	l.Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "value") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	New(WithWriter(&buf), WithDebug(false)).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug line should be filtered, got %q", buf.String())
	}

	buf.Reset()
	New(WithWriter(&buf), WithDebug(true)).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug line missing, got %q", buf.String())
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New(WithWriter(&buf), WithJSON(true)).Info("structured", "count", 42)

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if parsed["msg"] != "structured" {
		t.Errorf("msg = %v, want structured", parsed["msg"])
	}
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	New(WithWriter(&buf), WithPretty(true)).Info("pretty output")
	if !strings.Contains(buf.String(), "pretty output") {
		t.Errorf("pretty output missing, got %q", buf.String())
	}
}

func TestMultipleWriters(t *testing.T) {
	var a, b bytes.Buffer
	New(WithWriters(&a, &b)).Info("multi")
	if !strings.Contains(a.String(), "multi") || !strings.Contains(b.String(), "multi") {
		t.Errorf("both writers should receive output: %q / %q", a.String(), b.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("discarded")
	l.With("k", "v").Error("discarded")
	if l.Handler().Enabled(context.Background(), slog.LevelError) {
		t.Error("nop handler should be disabled at every level")
	}
}
