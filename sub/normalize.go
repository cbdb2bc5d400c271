package sub

import (
	"fmt"
	"log/slog"
	"slices"
)

// Normalize converts a value into an ordered sequence of primitive
// substitutions. The value must be a string, a Substitution, or a slice of
// either (including mixed []any); anything else fails with
// [ErrArgumentType]. Bare strings become [Text]. Normalization is
// deterministic and order-preserving.
//
// Constructors wrap the returned error with the parameter and constructor
// names so the launch-description author can locate the offending argument.
func Normalize(value any) ([]Substitution, error) {
	switch v := value.(type) {
	case string:
		return []Substitution{Text(v)}, nil

	case Substitution:
		return []Substitution{v}, nil

	case []Substitution:
		return slices.Clone(v), nil

	case []string:
		subs := make([]Substitution, len(v))
		for i, s := range v {
			subs[i] = Text(s)
		}

		return subs, nil

	case []any:
		subs := make([]Substitution, 0, len(v))

		for _, item := range v {
			switch it := item.(type) {
			case string:
				subs = append(subs, Text(it))

			case Substitution:
				subs = append(subs, it)

			default:
				return nil, ErrArgumentType.
					With(slog.String("type", fmt.Sprintf("%T", item)))
			}
		}

		return subs, nil

	default:
		return nil, ErrArgumentType.
			With(slog.String("type", fmt.Sprintf("%T", value)))
	}
}

// normalizeArgument wraps Normalize with attributes identifying the
// parameter and constructing type for argument-type errors.
func normalizeArgument(
	value any,
	parameter, constructor string,
) ([]Substitution, error) {
	subs, err := Normalize(value)
	if err != nil {
		return nil, WrapError(err).
			With(
				slog.String("parameter", parameter),
				slog.String("constructor", constructor),
			)
	}

	return subs, nil
}
