package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/zflat/launch/frontend"
	"github.com/zflat/launch/sub"
)

// Visit loads a launch description, executes its actions against a context
// built from command-line bindings, and dumps the resulting launch
// configurations as YAML.
type Visit struct {
	Description string `arg:"" help:"Launch description file" name:"description" type:"existingfile"`

	Arg []string `help:"Bind a launch configuration (NAME=VALUE)"  name:"arg" short:"a"`
	Env []string `help:"Bind an environment variable (NAME=VALUE)" name:"env" short:"e"`
}

// Run executes the visit command.
func (v *Visit) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	sctx, err := MakeContext(v.Arg, v.Env, "")
	if err != nil {
		return sub.WrapError(err).
			With(slog.String("command", "visit"))
	}

	desc, err := frontend.LoadDescriptionFile(v.Description)
	if err != nil {
		return sub.WrapError(err).
			With(
				slog.String("command", "visit"),
				slog.String("description", v.Description),
			)
	}

	if err := desc.Visit(sctx); err != nil {
		return sub.WrapError(err).
			With(
				slog.String("command", "visit"),
				slog.String("description", v.Description),
			)
	}

	data, err := yaml.Marshal(sctx.Configurations())
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	fmt.Print(string(data))

	return nil
}
