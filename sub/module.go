package sub

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/sahilm/fuzzy"
)

// MathModuleName is the name of the built-in math module. It is the default
// module list for [Expr] when none is given.
const MathModuleName = "math"

// Module is a named set of exports available to expressions. Expressions
// reference exports qualified by the module name; modules constructed with
// the merged flag additionally bind every export unqualified, which is how
// the math module has historically been exposed.
type Module struct {
	Name    string
	Exports map[string]any

	// merged marks the module's exports for unqualified binding in the
	// evaluation namespace. Only the math module carries this flag; it is
	// an explicit default binding set, not behavior switched on the name.
	merged bool
}

// Merged reports whether the module's exports are also bound unqualified.
func (m Module) Merged() bool { return m.merged }

//nolint:gochecknoglobals
var (
	moduleMutex sync.RWMutex
	modules     = builtinModules()
)

// RegisterModule adds a module to the registry, making it loadable by name
// from expressions. Registering a name twice fails with
// [ErrModuleRedefined].
func RegisterModule(m Module) error {
	moduleMutex.Lock()
	defer moduleMutex.Unlock()

	if _, exists := modules[m.Name]; exists {
		return ErrModuleRedefined.
			With(slog.String("module", m.Name))
	}

	modules[m.Name] = m

	return nil
}

// LookupModule returns the module registered under the given name. Unknown
// names fail with [ErrModuleNotFound], decorated with the closest registered
// name when one resembles the request.
func LookupModule(name string) (Module, error) {
	moduleMutex.RLock()
	m, ok := modules[name]
	moduleMutex.RUnlock()

	if ok {
		return m, nil
	}

	err := ErrModuleNotFound.
		With(slog.String("module", name))

	if match := fuzzy.Find(name, ModuleNames()); len(match) > 0 {
		err = err.With(slog.String("suggestion", match[0].Str))
	}

	return Module{}, err
}

// ModuleNames returns the sorted names of all registered modules.
func ModuleNames() []string {
	moduleMutex.RLock()
	defer moduleMutex.RUnlock()

	return slices.Sorted(maps.Keys(modules))
}

// ModuleExports returns the sorted export names of the named module, or nil
// if it is not registered. Used for completion.
func ModuleExports(name string) []string {
	moduleMutex.RLock()
	m, ok := modules[name]
	moduleMutex.RUnlock()

	if !ok {
		return nil
	}

	return slices.Sorted(maps.Keys(m.Exports))
}

// builtinModules constructs the registry of modules compiled into the
// process.
func builtinModules() map[string]Module {
	builtin := []Module{
		mathModule(),
		statisticsModule(),
		stringsModule(),
		pathModule(),
	}

	m := make(map[string]Module, len(builtin))
	for _, mod := range builtin {
		m[mod.Name] = mod
	}

	return m
}
