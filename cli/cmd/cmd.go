package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/zflat/launch/frontend"
	"github.com/zflat/launch/sub"
)

// Kong variable identifiers shared between the CLI and its commands.
const (
	ConfigIdentifier = "config"
	CacheIdentifier  = "cache"
)

type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// MakeContext builds a substitution context from NAME=VALUE bindings and an
// optional launch description, which is visited before the context is
// returned so its actions take effect.
func MakeContext(
	args, envs []string,
	description string,
) (*sub.Context, error) {
	sctx := sub.NewContext()

	for _, binding := range args {
		name, value, ok := strings.Cut(binding, "=")
		if !ok {
			return nil, ErrBinding.
				With(
					slog.String("flag", "arg"),
					slog.String("binding", binding),
				)
		}

		sctx.SetConfiguration(name, value)
	}

	for _, binding := range envs {
		name, value, ok := strings.Cut(binding, "=")
		if !ok {
			return nil, ErrBinding.
				With(
					slog.String("flag", "env"),
					slog.String("binding", binding),
				)
		}

		sctx.SetEnviron(name, value)
	}

	if description != "" {
		desc, err := frontend.LoadDescriptionFile(description)
		if err != nil {
			return nil, err
		}

		if err := desc.Visit(sctx); err != nil {
			return nil, err
		}
	}

	return sctx, nil
}
