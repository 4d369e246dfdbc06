package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fixedLogger(mode ColorMode, verbose bool) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(&buf, mode, verbose)
	l.now = func() time.Time { return time.Date(2023, 11, 10, 22, 41, 26, 0, time.UTC) }
	return l, &buf
}

func TestLogger_PlainLine(t *testing.T) {
	l, buf := fixedLogger(ColorNever, false)
	l.Info("read %d records", 3)

	want := "2023-11-10 22:41:26 [INFO] read 3 records\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestLogger_Colored(t *testing.T) {
	l, buf := fixedLogger(ColorAlways, false)
	l.Warn("careful")

	if !strings.Contains(buf.String(), yellow+"[WARN]"+reset) {
		t.Errorf("expected colored level, got %q", buf.String())
	}
}

func TestLogger_AutoDisablesColorForBuffers(t *testing.T) {
	l, buf := fixedLogger(ColorAuto, false)
	l.Error("boom")

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("auto mode should not color a non-terminal writer, got %q", buf.String())
	}
}

func TestLogger_DebugOnlyWhenVerbose(t *testing.T) {
	quiet, quietBuf := fixedLogger(ColorNever, false)
	quiet.Debug("hidden")
	if quietBuf.Len() != 0 {
		t.Errorf("debug should be suppressed, got %q", quietBuf.String())
	}

	loud, loudBuf := fixedLogger(ColorNever, true)
	loud.Debug("shown")
	if !strings.Contains(loudBuf.String(), "[DEBUG] shown") {
		t.Errorf("debug should be written when verbose, got %q", loudBuf.String())
	}
}

func TestParseColorMode(t *testing.T) {
	for _, s := range []string{"auto", "ALWAYS", "never"} {
		if _, err := ParseColorMode(s); err != nil {
			t.Errorf("ParseColorMode(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Error("ParseColorMode should reject unknown modes")
	}
}
