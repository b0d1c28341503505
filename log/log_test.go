package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Warning, &buf, true)
	l.Debug("hidden")
	l.Info("also hidden")
	l.Warning("shown", "k", "v")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug/info to be filtered out, got: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "k=v") {
		t.Fatalf("expected warning line with k=v, got: %q", out)
	}
}

func TestFatalSuppressed(t *testing.T) {
	var buf bytes.Buffer
	l := New(Debug, &buf, true)
	l.Fatal("boom")
	if !strings.Contains(buf.String(), "FATAL: boom") {
		t.Fatalf("expected fatal line, got: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Error, &buf, true)
	l.Info("skip")
	l.SetLevel(Debug)
	l.Info("keep")
	out := buf.String()
	if strings.Contains(out, "skip") {
		t.Fatalf("expected first info to be skipped")
	}
	if !strings.Contains(out, "keep") {
		t.Fatalf("expected second info to be logged after SetLevel")
	}
}
