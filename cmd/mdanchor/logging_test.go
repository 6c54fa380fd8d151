package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags commonFlags
		want  slog.Level
	}{
		{"default", commonFlags{}, slog.LevelWarn},
		{"verbose", commonFlags{verbose: true}, slog.LevelInfo},
		{"debug", commonFlags{debug: true}, slog.LevelDebug},
		{"quiet wins", commonFlags{quiet: true, verbose: true, debug: true}, slog.LevelError},
	}
	for _, tt := range tests {
		if got := logLevel(tt.flags); got != tt.want {
			t.Errorf("%s: logLevel() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	dump(&buf, struct{ HeaderPrefix string }{"doc-"})

	out := buf.String()
	if !strings.Contains(out, "HeaderPrefix") || !strings.Contains(out, "doc-") {
		t.Errorf("dump = %q, want field and value", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("dump to a buffer is colored: %q", out)
	}
}
