package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve returns a [kong.ConfigurationLoader] that reads flag defaults from
// a YAML config file. The file holds a single top-level mapping named by the
// given key, whose entries are flag names with their values:
//
//	config:
//	  log-level: debug
//	  log-format: text
//	  log-pretty: true
//
// Flag names may use underscores in place of hyphens. A missing or
// malformed file yields an empty resolver so kong falls back to built-in
// defaults; command-line flags override config file values.
func resolve(key string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return config{}, nil
		}

		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return config{}, nil
		}

		section, ok := doc[key].(map[string]any)
		if !ok {
			return config{}, nil
		}

		flat := make(config, len(section))
		for name, value := range section {
			flat[name] = flagValue(value)
		}

		return flat, nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver]. Kong flags use hyphens but YAML keys
// may use underscores; both forms are accepted.
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

// flagValue converts a YAML value into a form kong can parse. Kong requires
// numbers as strings.
func flagValue(value any) any {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)

	case uint64:
		return strconv.FormatUint(v, 10)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	default:
		return v
	}
}
