package builder

import "strconv"

// IDFn generates a vertex label from a zero-based index. It must be a
// pure, deterministic function: the same idx always yields the same
// label.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0->"0", 42->"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNumberIDFn returns prefix+decimal index, e.g. "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}
