// Package profile gates runtime profiling behind the "pprof" build tag.
//
// When built without the tag, every operation is a no-op and the binary
// carries no profiling machinery. When built with the tag, profiling is
// delegated to github.com/pkg/profile and controlled by the CLI's --pprof-*
// flags.
package profile

// Tag is the build tag (and default output subdirectory) for profiling.
const Tag = "pprof"
