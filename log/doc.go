// Package log provides a concurrency-safe wrapper over [log/slog] with a
// trace level, selectable output formats, and optional colorized pretty
// printing for interactive use.
//
// A package-level default logger writes to stderr and is reconfigured by the
// CLI as soon as logging flags are parsed. Libraries in this module accept a
// [Logger] value instead of reaching for the default so tests can capture
// output.
package log
