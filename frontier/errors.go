package frontier

import "errors"

// ErrEmptyGraph indicates Build was called on a graph with no edges.
var ErrEmptyGraph = errors.New("frontier: graph has no edges")
