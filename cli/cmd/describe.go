package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zflat/launch/frontend"
	"github.com/zflat/launch/sub"
)

// Describe parses substitution text and prints its unresolved form without
// performing it. Useful for inspecting what a launch description will
// evaluate.
type Describe struct {
	Text []string `arg:"" help:"Substitution text to describe" name:"text"`
}

// Run executes the describe command.
func (d *Describe) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	for _, text := range d.Text {
		subs, err := frontend.Parse(text)
		if err != nil {
			return sub.WrapError(err).
				With(
					slog.String("command", "describe"),
					slog.String("text", text),
				)
		}

		fmt.Println(sub.Describe(subs, " + "))
	}

	return nil
}
