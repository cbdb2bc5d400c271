package sub

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/expr-lang/expr"
)

// Expr is a substitution that evaluates an expression at perform time and
// resolves to the rendered result. Both the expression source and the module
// names are themselves substitution sequences, so either may depend on
// launch state that exists only when the substitution is performed.
//
// Construction validates argument shape only. The expression source is not
// compiled, and module names are not resolved, until Perform: an Expr over
// an unknown module or invalid source constructs fine and fails when
// performed.
type Expr struct {
	expression []Substitution
	modules    []Substitution
}

// NewExpr creates an expression substitution.
//
// The expression may be a string, a Substitution, or a slice of either; the
// normalized fragments concatenate into the expression source at perform
// time. Each modules argument names one module to load, except that a slice
// argument contributes one module per element. Omitting modules entirely
// loads the math module; passing an explicit empty slice loads none.
func NewExpr(expression any, modules ...any) (*Expr, error) {
	source, err := normalizeArgument(expression, "expression", "Expr")
	if err != nil {
		return nil, err
	}

	if len(modules) == 0 {
		return &Expr{
			expression: source,
			modules:    []Substitution{Text(MathModuleName)},
		}, nil
	}

	names := make([]Substitution, 0, len(modules))

	for _, m := range modules {
		subs, err := normalizeArgument(m, "modules", "Expr")
		if err != nil {
			return nil, err
		}

		names = append(names, subs...)
	}

	return &Expr{expression: source, modules: names}, nil
}

// Expression returns a copy of the substitutions forming the expression
// source.
func (e *Expr) Expression() []Substitution {
	return slices.Clone(e.expression)
}

// Modules returns a copy of the substitutions naming the modules to load.
func (e *Expr) Modules() []Substitution {
	return slices.Clone(e.modules)
}

// Describe returns an unresolved representation of the substitution, naming
// the expression fragments and the modules they will be evaluated against.
func (e *Expr) Describe() string {
	return "Expr(" +
		Describe(e.expression, " + ") +
		", [" + Describe(e.modules, ", ") + "])"
}

// Perform resolves the module names, builds the evaluation namespace,
// resolves the expression source, and evaluates it. The rendered result
// becomes the substitution's value.
//
// The namespace contains exactly the loaded modules, each bound under its
// name; modules flagged as merged additionally bind their exports
// unqualified. Nothing else is reachable from the expression.
func (e *Expr) Perform(ctx *Context) (string, error) {
	env := make(map[string]any, len(e.modules))

	for _, name := range e.modules {
		resolved, err := ctx.Perform(name)
		if err != nil {
			return "", err
		}

		mod, err := LookupModule(resolved)
		if err != nil {
			return "", err
		}

		if mod.Merged() {
			maps.Copy(env, mod.Exports)
		}

		env[mod.Name] = mod.Exports
	}

	source, err := Perform(ctx, e.expression)
	if err != nil {
		return "", err
	}

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return "", ErrExprCompile.
			Wrap(err).
			With(slog.String("expression", source))
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return "", ErrExprEvaluate.
			Wrap(err).
			With(slog.String("expression", source))
	}

	return Format(result), nil
}
