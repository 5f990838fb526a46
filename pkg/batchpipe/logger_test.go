package batchpipe

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.SetOutput(&buf)

	l.Info("info line")
	l.Success("done")
	l.Warning("careful")
	l.Error("broken")
	l.Debug("hidden")

	out := buf.String()
	for _, want := range []string{"[batchpipe]", "info line", "done", "careful", "broken"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug output written while disabled")
	}

	l.EnableDebug(true)
	l.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("debug output missing while enabled")
	}
}

func TestNilLoggerDebug(t *testing.T) {
	var l *Logger
	l.Debug("ignored")
}
