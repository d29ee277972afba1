package builder

import "errors"

// ErrTooFewVertices is returned when a constructor is asked to build a
// shape smaller than its minimum well-defined size.
var ErrTooFewVertices = errors.New("builder: too few vertices")
