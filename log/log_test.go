package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelDebug))
	logger.Info("hello", slog.String("who", "world"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if record["msg"] != "hello" || record["who"] != "world" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestMake_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithLevel(LevelWarn))

	logger.Debug("dropped")
	logger.Info("dropped")

	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("kept")

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("expected warn output, got %q", buf.String())
	}
}

func TestMake_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatText), WithLevel(LevelTrace))
	logger.Trace("lowest")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE level name, got %q", buf.String())
	}
}

func TestWrap_Overrides(t *testing.T) {
	var base, wrapped bytes.Buffer

	logger := Make(&base, WithFormat(FormatText), WithLevel(LevelInfo))
	quiet := logger.Wrap(WithOutput(&wrapped), WithLevel(LevelError))

	quiet.Info("dropped")
	quiet.Error("kept")

	if base.Len() != 0 {
		t.Errorf("wrapped logger must not write to the base output: %q", base.String())
	}

	if !strings.Contains(wrapped.String(), "kept") {
		t.Errorf("expected error output, got %q", wrapped.String())
	}
}

func TestWith_Attrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelInfo)).
		With(slog.String("component", "test"))

	logger.Info("message")

	if !strings.Contains(buf.String(), `"component":"test"`) {
		t.Errorf("expected attached attribute, got %q", buf.String())
	}
}

func TestZeroValueLogger(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("ignored")

	if logger.Level() != DefaultLevel || logger.Format() != DefaultFormat {
		t.Error("zero value logger must report defaults")
	}
}
