package sub

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	for _, tt := range []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 7, "7"},
		{"int64", int64(-3), "-3"},
		{"float exact", 4.0, "4.0"},
		{"float fraction", 2.5, "2.5"},
		{"float negative", -0.5, "-0.5"},
		{"float exponent", 1e21, "1e+21"},
		{"inf", math.Inf(1), "inf"},
		{"neg inf", math.Inf(-1), "-inf"},
		{"nan", math.NaN(), "nan"},
		{"any slice", []any{1, 2.5, "x"}, "[1, 2.5, x]"},
		{"string slice", []string{"a", "b"}, "[a, b]"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.value); got != tt.want {
				t.Errorf("Format(%v) = %q, expected %q", tt.value, got, tt.want)
			}
		})
	}
}
