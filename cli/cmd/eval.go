package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zflat/launch/frontend"
	"github.com/zflat/launch/sub"
)

// Eval parses substitution text and performs it against a context built from
// command-line bindings and an optional launch description.
type Eval struct {
	Text []string `arg:"" help:"Substitution text to evaluate" name:"text"`

	Arg         []string `help:"Bind a launch configuration (NAME=VALUE)"      name:"arg" short:"a"`
	Env         []string `help:"Bind an environment variable (NAME=VALUE)"     name:"env" short:"e"`
	Description string   `help:"Launch description to visit before evaluating" short:"d"  type:"existingfile"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	sctx, err := MakeContext(e.Arg, e.Env, e.Description)
	if err != nil {
		return sub.WrapError(err).
			With(slog.String("command", "eval"))
	}

	for _, text := range e.Text {
		subs, err := frontend.Parse(text)
		if err != nil {
			return sub.WrapError(err).
				With(
					slog.String("command", "eval"),
					slog.String("text", text),
				)
		}

		result, err := sub.Perform(sctx, subs)
		if err != nil {
			return sub.WrapError(err).
				With(
					slog.String("command", "eval"),
					slog.String("text", text),
				)
		}

		fmt.Println(result)
	}

	return nil
}
