package sub

import "strings"

// Substitution is a deferred, context-dependent computation producing text
// at launch time.
//
// Describe returns a human-readable representation of the unresolved
// substitution for diagnostics. Perform resolves the substitution to its
// final string value against the given context.
type Substitution interface {
	Describe() string
	Perform(ctx *Context) (string, error)
}

// Perform resolves each substitution in order against the given context and
// concatenates the results into a single string.
func Perform(ctx *Context, subs []Substitution) (string, error) {
	var b strings.Builder

	for _, s := range subs {
		if s == nil {
			return "", ErrNilSubstitution
		}

		text, err := ctx.Perform(s)
		if err != nil {
			return "", err
		}

		b.WriteString(text)
	}

	return b.String(), nil
}

// Describe returns the descriptions of the given substitutions joined with
// the separator. It is used to build composite descriptions such as those
// produced by [Expr.Describe].
func Describe(subs []Substitution, sep string) string {
	desc := make([]string, len(subs))
	for i, s := range subs {
		if s == nil {
			continue
		}

		desc[i] = s.Describe()
	}

	return strings.Join(desc, sep)
}
