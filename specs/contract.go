package specs

// Terminal verdicts a Transition may return instead of a next level.
// These mirror the zdd engine's contract: 0 routes to the reject
// terminal, -1 routes to the accept terminal, any other returned value
// is the next level to recurse into.
const (
	Reject = 0
	Accept = -1
)

// Spec is the contract every constrained-subgraph family implements.
// The zdd builder calls Init once per diagram and Transition once per
// (state, level, value) triple it has not already memoized.
type Spec interface {
	// ArrayWidth returns W, the scratch width this spec needs; the
	// builder allocates exactly this many int64 slots per state.
	ArrayWidth() int

	// Arity returns the number of branch values per edge: 2 for an
	// ordinary take/skip decision, 3 for the two-colour variant.
	Arity() int

	// NumEdges returns m.
	NumEdges() int

	// Init zeroes scratch and returns the root level, m.
	Init(scratch []int64) int

	// Transition applies decision value to the edge at the given
	// level, mutating scratch in place, and returns Reject, Accept,
	// or the next level to continue at.
	Transition(scratch []int64, level int, value int) int
}
