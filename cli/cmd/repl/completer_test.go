package repl

import (
	"slices"
	"strings"
	"testing"
)

func TestWordBounds(t *testing.T) {
	for _, tt := range []struct {
		name   string
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{"empty", "", 0, "", 0, 0},
		{"single word", "sqrt", 4, "sqrt", 0, 4},
		{"mid word", "sqrt", 2, "sqrt", 0, 4},
		{"after operator", "1 + sq", 6, "sq", 4, 6},
		{"dotted", "statistics.me", 13, "statistics.me", 0, 13},
		{"inside marker", "$(eval 'sq", 10, "sq", 8, 10},
		{"on boundary", "1 + ", 4, "", 4, 4},
	} {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.word || start != tt.start || end != tt.end {
				t.Errorf(
					"wordBounds(%q, %d) = (%q, %d, %d), expected (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.word, tt.start, tt.end,
				)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	names := candidates()

	for _, want := range []string{
		"eval",                // tag
		"math",                // module
		"statistics.mean",     // qualified export
		"sqrt",                // merged math export, unqualified
		"math.sqrt",           // merged math export, qualified
	} {
		if !slices.Contains(names, want) {
			t.Errorf("expected candidate %q", want)
		}
	}
}

func TestComplete(t *testing.T) {
	found := complete("1 + sqr", 7)
	if len(found) == 0 {
		t.Fatal("expected candidates for 'sqr'")
	}

	if !slices.ContainsFunc(found, func(s string) bool {
		return strings.Contains(s, "sqrt")
	}) {
		t.Errorf("expected a sqrt completion, got %v", found)
	}
}

func TestComplete_EmptyWord(t *testing.T) {
	if found := complete("1 + ", 4); found != nil {
		t.Errorf("expected no candidates on a boundary, got %v", found)
	}
}

func TestAccept(t *testing.T) {
	value, cursor := accept("1 + sq", 6, "sqrt")
	if value != "1 + sqrt" || cursor != 8 {
		t.Errorf("accept = (%q, %d), expected ('1 + sqrt', 8)", value, cursor)
	}

	value, cursor = accept("sq * 2", 2, "sqrt")
	if value != "sqrt * 2" || cursor != 4 {
		t.Errorf("accept = (%q, %d), expected ('sqrt * 2', 4)", value, cursor)
	}
}
