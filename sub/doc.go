// Package sub implements deferred, context-dependent text substitutions for
// declarative launch descriptions.
//
// A [Substitution] is constructed eagerly when a launch description is built
// and performed lazily against a [Context] when the description executes.
// Performing a substitution is free of side effects on the substitution
// itself, so a single instance may be performed repeatedly and concurrently
// against different contexts.
//
// The package provides the trivial [Text] substitution, environment and
// launch-configuration lookups, and [Expr], which evaluates an expression
// against a whitelisted namespace of named modules.
package sub
