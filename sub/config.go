package sub

import "log/slog"

// Configuration is a substitution resolving to the value of a named launch
// configuration in the context. An optional default applies when the name is
// unbound; without one, an unbound name fails the perform.
type Configuration struct {
	name       []Substitution
	defaults   []Substitution
	hasDefault bool
}

// NewConfiguration creates a launch configuration substitution with no
// default.
func NewConfiguration(name any) (*Configuration, error) {
	subs, err := normalizeArgument(name, "name", "Configuration")
	if err != nil {
		return nil, err
	}

	return &Configuration{name: subs}, nil
}

// NewConfigurationDefault creates a launch configuration substitution that
// resolves to the given default when the name is unbound.
func NewConfigurationDefault(name, defaultValue any) (*Configuration, error) {
	c, err := NewConfiguration(name)
	if err != nil {
		return nil, err
	}

	subs, err := normalizeArgument(defaultValue, "defaultValue", "Configuration")
	if err != nil {
		return nil, err
	}

	c.defaults = subs
	c.hasDefault = true

	return c, nil
}

// Name returns a copy of the substitutions forming the configuration name.
func (c *Configuration) Name() []Substitution {
	return append([]Substitution(nil), c.name...)
}

// Describe returns an unresolved representation of the substitution,
// including the default when one is set.
func (c *Configuration) Describe() string {
	if c.hasDefault {
		return "Config(" + Describe(c.name, " + ") +
			", " + Describe(c.defaults, " + ") + ")"
	}

	return "Config(" + Describe(c.name, " + ") + ")"
}

// Perform resolves the configuration name and looks up its binding in the
// context.
func (c *Configuration) Perform(ctx *Context) (string, error) {
	name, err := Perform(ctx, c.name)
	if err != nil {
		return "", err
	}

	if value, ok := ctx.Configuration(name); ok {
		return value, nil
	}

	if c.hasDefault {
		return Perform(ctx, c.defaults)
	}

	return "", ErrConfigurationNotFound.
		With(slog.String("name", name))
}
