package main

import "errors"

// ErrUsage indicates a CLI invocation error: no subgraph flag, more
// than one, a missing or extra positional argument, or letter preset
// flags used against a graph whose vertex count doesn't match the
// preset's shape.
var ErrUsage = errors.New("frontierzdd: usage error")
