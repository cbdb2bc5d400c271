package sub

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders an evaluated expression value as substitution text.
//
// Rendering follows the conventions launch authors expect from the original
// frontends: integers render bare, floats always carry a decimal point (or
// an exponent), booleans render lowercase, nil renders empty, and sequences
// render bracketed with comma-separated elements.
func Format(value any) string {
	switch v := value.(type) {
	case nil:
		return ""

	case string:
		return v

	case bool:
		return strconv.FormatBool(v)

	case int:
		return strconv.Itoa(v)

	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case float32:
		return formatFloat(float64(v))

	case float64:
		return formatFloat(v)

	case []any:
		elems := make([]string, len(v))
		for i, e := range v {
			elems[i] = Format(e)
		}

		return "[" + strings.Join(elems, ", ") + "]"

	case []string:
		return "[" + strings.Join(v, ", ") + "]"

	default:
		return fmt.Sprint(v)
	}
}

// formatFloat renders a float with an explicit decimal point unless the
// value is non-finite or already carries an exponent.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"

	case math.IsInf(f, 1):
		return "inf"

	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}
