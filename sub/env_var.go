package sub

import "log/slog"

// EnvVar is a substitution resolving to the value of an environment
// variable, consulting the context's overlay before the process environment.
// An optional default applies when the variable is unset; without one, an
// unset variable fails the perform.
type EnvVar struct {
	name       []Substitution
	defaults   []Substitution
	hasDefault bool
}

// NewEnvVar creates an environment variable substitution with no default.
func NewEnvVar(name any) (*EnvVar, error) {
	subs, err := normalizeArgument(name, "name", "EnvVar")
	if err != nil {
		return nil, err
	}

	return &EnvVar{name: subs}, nil
}

// NewEnvVarDefault creates an environment variable substitution that resolves
// to the given default when the variable is unset.
func NewEnvVarDefault(name, defaultValue any) (*EnvVar, error) {
	e, err := NewEnvVar(name)
	if err != nil {
		return nil, err
	}

	subs, err := normalizeArgument(defaultValue, "defaultValue", "EnvVar")
	if err != nil {
		return nil, err
	}

	e.defaults = subs
	e.hasDefault = true

	return e, nil
}

// Name returns a copy of the substitutions forming the variable name.
func (e *EnvVar) Name() []Substitution {
	return append([]Substitution(nil), e.name...)
}

// Describe returns an unresolved representation of the substitution,
// including the default when one is set.
func (e *EnvVar) Describe() string {
	if e.hasDefault {
		return "EnvVar(" + Describe(e.name, " + ") +
			", " + Describe(e.defaults, " + ") + ")"
	}

	return "EnvVar(" + Describe(e.name, " + ") + ")"
}

// Perform resolves the variable name and looks it up in the context.
func (e *EnvVar) Perform(ctx *Context) (string, error) {
	name, err := Perform(ctx, e.name)
	if err != nil {
		return "", err
	}

	if value, ok := ctx.Environ(name); ok {
		return value, nil
	}

	if e.hasDefault {
		return Perform(ctx, e.defaults)
	}

	return "", ErrEnvironmentNotFound.
		With(slog.String("name", name))
}
