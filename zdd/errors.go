package zdd

import "errors"

// ErrArityMismatch indicates a Spec reported an Arity outside [2, 3].
var ErrArityMismatch = errors.New("zdd: spec arity must be 2 or 3")
