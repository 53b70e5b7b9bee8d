package diagram

import "errors"

// ErrInvalidDiagram reports a diagram document that cannot be turned into
// timelines.
var ErrInvalidDiagram = errors.New("invalid diagram")
