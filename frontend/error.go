package frontend

import "github.com/zflat/launch/sub"

// Predefined errors (sentinel values).
var (
	ErrUnknownTag        = sub.NewError("unknown substitution tag")
	ErrTagRedefined      = sub.NewError("substitution tag already registered")
	ErrUnterminated      = sub.NewError("unterminated substitution")
	ErrArgumentCount     = sub.NewError("wrong number of arguments")
	ErrDescriptionFormat = sub.NewError("malformed launch description")
)
