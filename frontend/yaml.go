package frontend

import (
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/zflat/launch/sub"
)

// Description is a loaded launch description: an ordered sequence of
// value-binding actions whose substitution text was parsed at load time.
// Visiting a description performs each action against a context in document
// order.
type Description struct {
	actions []action
}

type action interface {
	visit(ctx *sub.Context) error
}

// document is the YAML shape of a launch description.
type document struct {
	Launch []actionNode `yaml:"launch"`
}

// actionNode holds exactly one of the supported actions.
type actionNode struct {
	Arg    *argNode    `yaml:"arg"`
	Let    *letNode    `yaml:"let"`
	SetEnv *setEnvNode `yaml:"set_env"`
}

type argNode struct {
	Name    string  `yaml:"name"`
	Default *string `yaml:"default"`
}

type letNode struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type setEnvNode struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// LoadDescriptionFile loads a YAML launch description from a file.
func LoadDescriptionFile(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrDescriptionFormat.
			Wrap(err).
			With(slog.String("path", path))
	}
	defer f.Close()

	return LoadDescription(f)
}

// LoadDescription loads a YAML launch description. Every action value is
// parsed for substitution markers immediately, so malformed substitution
// text fails the load rather than the visit.
func LoadDescription(r io.Reader) (*Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrDescriptionFormat.Wrap(err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, ErrDescriptionFormat.Wrap(err)
	}

	desc := &Description{actions: make([]action, 0, len(doc.Launch))}

	for i, node := range doc.Launch {
		act, err := node.action()
		if err != nil {
			return nil, sub.WrapError(err).
				With(slog.Int("action", i))
		}

		desc.actions = append(desc.actions, act)
	}

	return desc, nil
}

// Visit performs the description's actions against the context in document
// order, stopping at the first failure.
func (d *Description) Visit(ctx *sub.Context) error {
	for _, act := range d.actions {
		if err := act.visit(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of actions in the description.
func (d *Description) Len() int { return len(d.actions) }

// action validates that the node holds exactly one action and parses its
// substitution text.
func (n actionNode) action() (action, error) {
	count := 0
	for _, set := range []bool{n.Arg != nil, n.Let != nil, n.SetEnv != nil} {
		if set {
			count++
		}
	}

	if count != 1 {
		return nil, ErrDescriptionFormat.
			With(slog.String("reason", "action must have exactly one of arg, let, set_env"))
	}

	switch {
	case n.Arg != nil:
		return n.Arg.parse()

	case n.Let != nil:
		return n.Let.parse()

	default:
		return n.SetEnv.parse()
	}
}

// declareAction declares a launch configuration, binding its default only
// when the name is not already bound. A declaration without a default
// requires the name to be bound before the visit.
type declareAction struct {
	name     string
	defaults []sub.Substitution
}

func (n *argNode) parse() (action, error) {
	act := &declareAction{name: n.Name}

	if n.Default != nil {
		subs, err := Parse(*n.Default)
		if err != nil {
			return nil, sub.WrapError(err).
				With(slog.String("arg", n.Name))
		}

		act.defaults = subs
	}

	return act, nil
}

func (a *declareAction) visit(ctx *sub.Context) error {
	if _, ok := ctx.Configuration(a.name); ok {
		return nil
	}

	if a.defaults == nil {
		return sub.ErrConfigurationNotFound.
			With(
				slog.String("name", a.name),
				slog.String("reason", "declared without default and not provided"),
			)
	}

	value, err := sub.Perform(ctx, a.defaults)
	if err != nil {
		return err
	}

	ctx.SetConfiguration(a.name, value)

	return nil
}

// assignAction binds a launch configuration unconditionally.
type assignAction struct {
	name  string
	value []sub.Substitution
}

func (n *letNode) parse() (action, error) {
	subs, err := Parse(n.Value)
	if err != nil {
		return nil, sub.WrapError(err).
			With(slog.String("let", n.Name))
	}

	return &assignAction{name: n.Name, value: subs}, nil
}

func (a *assignAction) visit(ctx *sub.Context) error {
	value, err := sub.Perform(ctx, a.value)
	if err != nil {
		return err
	}

	ctx.SetConfiguration(a.name, value)

	return nil
}

// setEnvAction binds an environment variable in the context overlay.
type setEnvAction struct {
	name  string
	value []sub.Substitution
}

func (n *setEnvNode) parse() (action, error) {
	subs, err := Parse(n.Value)
	if err != nil {
		return nil, sub.WrapError(err).
			With(slog.String("set_env", n.Name))
	}

	return &setEnvAction{name: n.Name, value: subs}, nil
}

func (a *setEnvAction) visit(ctx *sub.Context) error {
	value, err := sub.Perform(ctx, a.value)
	if err != nil {
		return err
	}

	ctx.SetEnviron(a.name, value)

	return nil
}
