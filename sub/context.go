package sub

import (
	"maps"
	"os"
	"sync"
)

// Context carries the runtime state against which substitutions resolve:
// named launch configurations and an environment overlay on top of the
// process environment.
//
// A Context is safe for concurrent use. Substitutions never mutate the
// context they are performed against; mutation happens only through the
// explicit setters, typically from launch actions executing in document
// order.
type Context struct {
	mutex          sync.RWMutex
	configurations map[string]string
	environ        map[string]string
	hermetic       bool // ignore the process environment
}

// ContextOption applies a configuration option to a Context under
// construction.
type ContextOption func(*Context)

// NewContext creates a new, empty launch context.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		configurations: make(map[string]string),
		environ:        make(map[string]string),
	}

	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// WithConfigurations returns an option that seeds the context with the given
// launch configurations.
func WithConfigurations(configurations map[string]string) ContextOption {
	return func(ctx *Context) {
		maps.Copy(ctx.configurations, configurations)
	}
}

// WithEnviron returns an option that seeds the context's environment overlay
// with the given variables.
func WithEnviron(environ map[string]string) ContextOption {
	return func(ctx *Context) {
		maps.Copy(ctx.environ, environ)
	}
}

// WithoutProcessEnviron returns an option that makes the context hermetic:
// environment lookups consult only the overlay, never the process
// environment. Hermetic contexts are used for parse-time resolution and
// tests.
func WithoutProcessEnviron() ContextOption {
	return func(ctx *Context) {
		ctx.hermetic = true
	}
}

// Perform resolves a single substitution against this context.
func (ctx *Context) Perform(s Substitution) (string, error) {
	if s == nil {
		return "", ErrNilSubstitution
	}

	return s.Perform(ctx)
}

// SetConfiguration binds a launch configuration name to a value, replacing
// any previous binding.
func (ctx *Context) SetConfiguration(name, value string) {
	ctx.mutex.Lock()
	defer ctx.mutex.Unlock()

	ctx.configurations[name] = value
}

// Configuration returns the value bound to a launch configuration name.
func (ctx *Context) Configuration(name string) (string, bool) {
	ctx.mutex.RLock()
	defer ctx.mutex.RUnlock()

	value, ok := ctx.configurations[name]

	return value, ok
}

// Configurations returns a copy of all launch configuration bindings.
func (ctx *Context) Configurations() map[string]string {
	ctx.mutex.RLock()
	defer ctx.mutex.RUnlock()

	return maps.Clone(ctx.configurations)
}

// SetEnviron binds an environment variable in the context's overlay,
// shadowing the process environment for subsequent lookups.
func (ctx *Context) SetEnviron(key, value string) {
	ctx.mutex.Lock()
	defer ctx.mutex.Unlock()

	ctx.environ[key] = value
}

// Environ returns the value of an environment variable, consulting the
// overlay first and then the process environment unless the context is
// hermetic.
func (ctx *Context) Environ(key string) (string, bool) {
	ctx.mutex.RLock()
	value, ok := ctx.environ[key]
	hermetic := ctx.hermetic
	ctx.mutex.RUnlock()

	if ok {
		return value, true
	}

	if hermetic {
		return "", false
	}

	return os.LookupEnv(key)
}
