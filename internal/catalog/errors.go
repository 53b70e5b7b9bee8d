package catalog

import "errors"

// Sentinel errors returned by Parse.
var (
	ErrSyntax          = errors.New("malformed expression")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrUnknownFunction = errors.New("unknown function")
	ErrBadArgument     = errors.New("bad argument")
)
