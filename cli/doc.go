// Package cli contains the command line interface for launch.
//
// # Usage
//
// Substitution text is evaluated by the default command:
//
//	launch "$(eval 'sqrt(16)')"
//	launch --arg robot=tb3 "robot_$(var robot)"
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o launch .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
//
// # Configuration
//
// Flag defaults are read from a YAML config file in the user config
// directory. The init command writes one populated with current values.
package cli
