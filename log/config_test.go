package log

import (
	"slices"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	} {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	for _, tt := range []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	} {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, expected %q", tt.level, got, tt.want)
		}
	}
}

func TestLevels(t *testing.T) {
	var names []string
	for name := range Levels() {
		names = append(names, name)
	}

	want := []string{"trace", "debug", "info", "warn", "error"}
	if !slices.Equal(names, want) {
		t.Errorf("Levels() = %v, expected %v", names, want)
	}
}

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{" text ", FormatText},
		{"bogus", DefaultFormat},
	} {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}
