package specs

import "errors"

// ErrBadEndpoint indicates an s-t path family was constructed with an s
// or t outside [1, n].
var ErrBadEndpoint = errors.New("specs: endpoint vertex out of range")
