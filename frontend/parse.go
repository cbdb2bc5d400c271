package frontend

import (
	"log/slog"
	"strings"

	"github.com/zflat/launch/sub"
)

// Parse scans text for $(tag arg …) substitution markers and returns the
// resulting substitution sequence. Literal runs become [sub.Text]; markers
// become whatever their tag's parse function constructs. Markers nest, and
// $$ escapes a literal dollar sign.
//
// Arguments are separated by unquoted whitespace. Single quotes group
// characters, including whitespace, into one argument without appearing in
// it; '' denotes an explicitly empty argument.
func Parse(text string) ([]sub.Substitution, error) {
	s := scanner{input: text}

	subs, err := s.scanText()
	if err != nil {
		return nil, err
	}

	if !s.eof() {
		// Only an unbalanced ')' stops scanText before the end.
		return nil, ErrUnterminated.
			With(slog.Int("position", s.pos))
	}

	return subs, nil
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) eof() bool { return s.pos >= len(s.input) }

func (s *scanner) hasPrefix(p string) bool {
	return strings.HasPrefix(s.input[s.pos:], p)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

// scanText scans literal text interleaved with markers until an unmatched
// ')' or the end of input, leaving the ')' unconsumed.
func (s *scanner) scanText() ([]sub.Substitution, error) {
	var (
		subs    []sub.Substitution
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			subs = append(subs, sub.Text(literal.String()))
			literal.Reset()
		}
	}

	for !s.eof() {
		switch {
		case s.hasPrefix("$$"):
			literal.WriteByte('$')
			s.pos += 2

		case s.hasPrefix("$("):
			flush()

			marker, err := s.scanMarker()
			if err != nil {
				return nil, err
			}

			subs = append(subs, marker)

		case s.input[s.pos] == ')':
			flush()

			return subs, nil

		default:
			literal.WriteByte(s.input[s.pos])
			s.pos++
		}
	}

	flush()

	return subs, nil
}

// scanMarker scans one $(tag arg …) marker, with the cursor on the '$', and
// dispatches to the tag's registered parse function.
func (s *scanner) scanMarker() (sub.Substitution, error) {
	start := s.pos
	s.pos += 2 // "$("

	tag := s.scanTag()

	parse, err := Lookup(tag)
	if err != nil {
		return nil, err
	}

	var groups [][]sub.Substitution

	for {
		s.skipSpace()

		if s.eof() {
			return nil, ErrUnterminated.
				With(
					slog.String("tag", tag),
					slog.Int("position", start),
				)
		}

		if s.input[s.pos] == ')' {
			s.pos++

			break
		}

		group, err := s.scanArgument(tag, start)
		if err != nil {
			return nil, err
		}

		groups = append(groups, group)
	}

	marker, err := parse(groups)
	if err != nil {
		return nil, sub.WrapError(err).
			With(slog.Int("position", start))
	}

	return marker, nil
}

// scanTag scans the tag name following "$(".
func (s *scanner) scanTag() string {
	start := s.pos

	for !s.eof() {
		c := s.input[s.pos]
		if isSpace(c) || c == ')' {
			break
		}

		s.pos++
	}

	return s.input[start:s.pos]
}

// scanArgument scans one argument group, stopping at unquoted whitespace or
// ')' without consuming it. Quotes toggle whether whitespace and ')' are
// literal; markers and $$ escapes apply inside quotes as well.
func (s *scanner) scanArgument(tag string, start int) ([]sub.Substitution, error) {
	var (
		group   []sub.Substitution
		literal strings.Builder
		quoted  bool
	)

	flush := func() {
		if literal.Len() > 0 {
			group = append(group, sub.Text(literal.String()))
			literal.Reset()
		}
	}

	for !s.eof() {
		c := s.input[s.pos]

		switch {
		case !quoted && (isSpace(c) || c == ')'):
			flush()

			return group, nil

		case c == '\'':
			quoted = !quoted
			s.pos++

		case s.hasPrefix("$$"):
			literal.WriteByte('$')
			s.pos += 2

		case s.hasPrefix("$("):
			flush()

			marker, err := s.scanMarker()
			if err != nil {
				return nil, err
			}

			group = append(group, marker)

		default:
			literal.WriteByte(c)
			s.pos++
		}
	}

	return nil, ErrUnterminated.
		With(
			slog.String("tag", tag),
			slog.Int("position", start),
		)
}

// parseEval is the parse function for $(eval expression [modules]).
//
// The expression group passes through unresolved. The module group, when
// present, resolves at parse time against an empty hermetic context into a
// comma-separated name list; module names that depend on launch state must
// be constructed through the API instead. An explicitly empty module group
// yields an empty module list rather than the default.
func parseEval(groups [][]sub.Substitution) (sub.Substitution, error) {
	if len(groups) < 1 || len(groups) > 2 {
		return nil, ErrArgumentCount.
			With(
				slog.String("tag", "eval"),
				slog.String("expected", "1 or 2"),
				slog.Int("actual", len(groups)),
			)
	}

	if len(groups) == 1 {
		return sub.NewExpr(groups[0])
	}

	names, err := moduleNames(groups[1])
	if err != nil {
		return nil, err
	}

	return sub.NewExpr(groups[0], names)
}

// moduleNames resolves a module-list group into trimmed names.
func moduleNames(group []sub.Substitution) ([]string, error) {
	if len(group) == 0 {
		return []string{}, nil
	}

	resolved, err := sub.Perform(
		sub.NewContext(sub.WithoutProcessEnviron()), group,
	)
	if err != nil {
		return nil, sub.WrapError(err).
			With(slog.String("argument", "modules"))
	}

	if strings.TrimSpace(resolved) == "" {
		return []string{}, nil
	}

	parts := strings.Split(resolved, ",")
	names := make([]string, len(parts))

	for i, p := range parts {
		names[i] = strings.TrimSpace(p)
	}

	return names, nil
}

// parseEnvVar is the parse function for $(env name [default]).
func parseEnvVar(groups [][]sub.Substitution) (sub.Substitution, error) {
	switch len(groups) {
	case 1:
		return sub.NewEnvVar(groups[0])
	case 2:
		return sub.NewEnvVarDefault(groups[0], groups[1])
	default:
		return nil, ErrArgumentCount.
			With(
				slog.String("tag", "env"),
				slog.String("expected", "1 or 2"),
				slog.Int("actual", len(groups)),
			)
	}
}

// parseConfiguration is the parse function for $(var name [default]).
func parseConfiguration(groups [][]sub.Substitution) (sub.Substitution, error) {
	switch len(groups) {
	case 1:
		return sub.NewConfiguration(groups[0])
	case 2:
		return sub.NewConfigurationDefault(groups[0], groups[1])
	default:
		return nil, ErrArgumentCount.
			With(
				slog.String("tag", "var"),
				slog.String("expected", "1 or 2"),
				slog.Int("actual", len(groups)),
			)
	}
}
