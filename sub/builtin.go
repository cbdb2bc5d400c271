package sub

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ardnew/mung"
)

// This file defines the built-in modules loadable by name from expressions.
// Export sets are intentionally closed: expressions can reach only what is
// listed here, never the host's reflective capabilities.

// errEmptySequence is raised by statistics functions given no data.
var errEmptySequence = NewError("empty data sequence")

// errTooFewDataPoints is raised by sample statistics given fewer data points
// than the estimator requires.
var errTooFewDataPoints = NewError("too few data points")

// mathModule returns the built-in math module. Its exports are merged
// unqualified into every evaluation namespace that loads it, so expressions
// may write sqrt(16) instead of math.sqrt(16).
func mathModule() Module {
	return Module{
		Name:   MathModuleName,
		merged: true,
		Exports: map[string]any{
			"pi":  math.Pi,
			"e":   math.E,
			"tau": 2 * math.Pi,
			"inf": math.Inf(1),
			"nan": math.NaN(),

			"sqrt":  floatFn(math.Sqrt),
			"cbrt":  floatFn(math.Cbrt),
			"pow":   floatFn2(math.Pow),
			"exp":   floatFn(math.Exp),
			"log":   floatFn(math.Log),
			"log2":  floatFn(math.Log2),
			"log10": floatFn(math.Log10),

			"sin":   floatFn(math.Sin),
			"cos":   floatFn(math.Cos),
			"tan":   floatFn(math.Tan),
			"asin":  floatFn(math.Asin),
			"acos":  floatFn(math.Acos),
			"atan":  floatFn(math.Atan),
			"atan2": floatFn2(math.Atan2),
			"sinh":  floatFn(math.Sinh),
			"cosh":  floatFn(math.Cosh),
			"tanh":  floatFn(math.Tanh),

			"floor": floatFn(math.Floor),
			"ceil":  floatFn(math.Ceil),
			"trunc": floatFn(math.Trunc),
			"round": floatFn(math.Round),

			"fabs":     floatFn(math.Abs),
			"fmod":     floatFn2(math.Mod),
			"hypot":    floatFn2(math.Hypot),
			"copysign": floatFn2(math.Copysign),

			"degrees": floatFn(func(rad float64) float64 { return rad * 180 / math.Pi }),
			"radians": floatFn(func(deg float64) float64 { return deg * math.Pi / 180 }),

			"isnan": boolFn(math.IsNaN),
			"isinf": boolFn(func(f float64) bool { return math.IsInf(f, 0) }),

			"gcd": gcd,
		},
	}
}

// statisticsModule returns the built-in statistics module. Mean and median
// return integers when the result is exact and every input was an integer,
// matching the rendering expected by launch descriptions ported from the
// original frontends.
func statisticsModule() Module {
	return Module{
		Name: "statistics",
		Exports: map[string]any{
			"mean":      statMean,
			"fmean":     statFmean,
			"median":    statMedian,
			"variance":  statVariance,
			"pvariance": statPvariance,
			"stdev":     statStdev,
			"pstdev":    statPstdev,
		},
	}
}

// stringsModule returns the built-in strings module.
func stringsModule() Module {
	return Module{
		Name: "strings",
		Exports: map[string]any{
			"upper":    strings.ToUpper,
			"lower":    strings.ToLower,
			"trim":     strings.TrimSpace,
			"split":    func(s, sep string) []string { return strings.Split(s, sep) },
			"join":     func(elems []string, sep string) string { return strings.Join(elems, sep) },
			"replace":  func(s, old, new string) string { return strings.ReplaceAll(s, old, new) },
			"contains": strings.Contains,
			"repeat":   strings.Repeat,
		},
	}
}

// pathModule returns the built-in path module: filepath helpers plus
// PATH-list munging.
func pathModule() Module {
	return Module{
		Name: "path",
		Exports: map[string]any{
			"join":  func(elem ...string) string { return filepath.Join(elem...) },
			"base":  filepath.Base,
			"dir":   filepath.Dir,
			"ext":   filepath.Ext,
			"clean": filepath.Clean,

			// prefix prepends items to a PATH-like list, deduplicating
			// against existing entries.
			"prefix": func(list string, prefix ...string) string {
				return mung.Make(
					mung.WithSubjectItems(list),
					mung.WithDelim(string(os.PathListSeparator)),
					mung.WithPrefixItems(prefix...),
				).String()
			},
		},
	}
}

// gcd returns the greatest common divisor of two integers.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// toFloat converts a single expression value to float64, reporting whether
// it was an integer.
func toFloat(v any) (float64, bool, error) {
	switch n := v.(type) {
	case int:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case float64:
		return n, false, nil
	case float32:
		return float64(n), false, nil
	default:
		return 0, false, ErrArgumentType.
			With(slog.String("type", fmt.Sprintf("%T", v)))
	}
}

// floatFn adapts a float64 function so module member calls coerce integer
// arguments. Expressions reach exports through a map, where the evaluator
// sees untyped values and inserts no numeric conversions of its own.
func floatFn(f func(float64) float64) func(any) (float64, error) {
	return func(v any) (float64, error) {
		x, _, err := toFloat(v)
		if err != nil {
			return 0, err
		}

		return f(x), nil
	}
}

// floatFn2 is floatFn for two-argument functions.
func floatFn2(f func(float64, float64) float64) func(any, any) (float64, error) {
	return func(a, b any) (float64, error) {
		x, _, err := toFloat(a)
		if err != nil {
			return 0, err
		}

		y, _, err := toFloat(b)
		if err != nil {
			return 0, err
		}

		return f(x, y), nil
	}
}

// boolFn is floatFn for predicates.
func boolFn(f func(float64) bool) func(any) (bool, error) {
	return func(v any) (bool, error) {
		x, _, err := toFloat(v)
		if err != nil {
			return false, err
		}

		return f(x), nil
	}
}

// toFloats converts a sequence of expression values to float64, reporting
// whether every element was an integer.
func toFloats(data []any) (vals []float64, integral bool, err error) {
	if len(data) == 0 {
		return nil, false, errEmptySequence
	}

	vals = make([]float64, len(data))
	integral = true

	for i, v := range data {
		f, isInt, err := toFloat(v)
		if err != nil {
			return nil, false, err
		}

		vals[i] = f
		integral = integral && isInt
	}

	return vals, integral, nil
}

// exactOrFloat returns an int when the value is exact and derived from
// all-integer inputs, and a float64 otherwise.
func exactOrFloat(v float64, integral bool) any {
	if integral && v == math.Trunc(v) {
		return int(v)
	}

	return v
}

func statMean(data []any) (any, error) {
	vals, integral, err := toFloats(data)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return exactOrFloat(sum/float64(len(vals)), integral), nil
}

func statFmean(data []any) (float64, error) {
	vals, _, err := toFloats(data)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, v := range vals {
		sum += v
	}

	return sum / float64(len(vals)), nil
}

func statMedian(data []any) (any, error) {
	vals, integral, err := toFloats(data)
	if err != nil {
		return nil, err
	}

	sort.Float64s(vals)

	n := len(vals)
	if n%2 == 1 {
		return exactOrFloat(vals[n/2], integral), nil
	}

	return exactOrFloat((vals[n/2-1]+vals[n/2])/2, integral), nil
}

// sumSquaredDeviations returns the sum of squared deviations from the mean.
func sumSquaredDeviations(vals []float64) float64 {
	mean := 0.0
	for _, v := range vals {
		mean += v
	}

	mean /= float64(len(vals))

	ss := 0.0

	for _, v := range vals {
		d := v - mean
		ss += d * d
	}

	return ss
}

func statVariance(data []any) (float64, error) {
	vals, _, err := toFloats(data)
	if err != nil {
		return 0, err
	}

	if len(vals) < 2 {
		return 0, errTooFewDataPoints.
			With(slog.Int("minimum", 2))
	}

	return sumSquaredDeviations(vals) / float64(len(vals)-1), nil
}

func statPvariance(data []any) (float64, error) {
	vals, _, err := toFloats(data)
	if err != nil {
		return 0, err
	}

	return sumSquaredDeviations(vals) / float64(len(vals)), nil
}

func statStdev(data []any) (float64, error) {
	v, err := statVariance(data)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

func statPstdev(data []any) (float64, error) {
	v, err := statPvariance(data)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}
