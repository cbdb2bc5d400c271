package frontend

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/zflat/launch/sub"
)

// ParseFunc constructs a substitution from the argument groups of a $(tag …)
// marker. Each group is the substitution sequence of one whitespace-separated
// argument.
type ParseFunc func(groups [][]sub.Substitution) (sub.Substitution, error)

//nolint:gochecknoglobals
var (
	tagMutex sync.RWMutex
	tags     = map[string]ParseFunc{
		"eval": parseEval,
		"env":  parseEnvVar,
		"var":  parseConfiguration,
	}
)

// Register adds a parse function for a tag, making $(tag …) markers parseable.
// Registering a tag twice fails with [ErrTagRedefined].
func Register(tag string, parse ParseFunc) error {
	tagMutex.Lock()
	defer tagMutex.Unlock()

	if _, exists := tags[tag]; exists {
		return ErrTagRedefined.
			With(slog.String("tag", tag))
	}

	tags[tag] = parse

	return nil
}

// Lookup returns the parse function registered for a tag. Unknown tags fail
// with [ErrUnknownTag], decorated with the closest registered tag when one
// resembles the request.
func Lookup(tag string) (ParseFunc, error) {
	tagMutex.RLock()
	parse, ok := tags[tag]
	tagMutex.RUnlock()

	if ok {
		return parse, nil
	}

	err := ErrUnknownTag.
		With(slog.String("tag", tag))

	if match := fuzzy.Find(tag, Tags()); len(match) > 0 {
		err = err.With(slog.String("suggestion", match[0].Str))
	}

	return nil, err
}

// Tags returns the sorted names of all registered tags.
func Tags() []string {
	tagMutex.RLock()
	defer tagMutex.RUnlock()

	return slices.Sorted(maps.Keys(tags))
}
