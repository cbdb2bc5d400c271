package repl

import "github.com/zflat/launch/sub"

// Predefined errors (sentinel values).
var (
	ErrOutOfBounds = sub.NewError("history index out of bounds")
	ErrNoCacheDir  = sub.NewError("cache directory undefined")
)
