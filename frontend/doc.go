// Package frontend binds textual launch descriptions to substitutions.
//
// It scans launch-file text for $(tag …) markers, dispatches each tag to a
// registered parse function, and loads YAML launch descriptions whose action
// values are themselves substitution text.
package frontend
