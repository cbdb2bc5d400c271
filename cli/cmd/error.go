package cmd

import "github.com/zflat/launch/sub"

// Predefined errors (sentinel values).
var (
	ErrBinding     = sub.NewError("malformed binding (expected NAME=VALUE)")
	ErrYAMLMarshal = sub.NewError("marshal YAML")
	ErrWriteConfig = sub.NewError("write configuration file")
	ErrFileExists  = sub.NewError("file exists (use --force to overwrite)")
)
