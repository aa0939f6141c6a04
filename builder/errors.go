package builder

import "errors"

// ErrTooFewVertices indicates a size parameter is smaller than the
// constructor's documented minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates RandomSparse was invoked without an RNG and
// a probability strictly between 0 and 1, so the edge set cannot be
// sampled deterministically.
var ErrNeedRandSource = errors.New("builder: rng is required")
