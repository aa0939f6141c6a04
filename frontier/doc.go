// Package frontier computes the frontier schedule of an edge-ordered
// graph: for each edge position i, which vertices newly enter the
// frontier when e_i is processed, which leave once e_i is processed,
// and which are live on the frontier while e_i is processed.
//
// What:
//
//   - Schedule.Entering(i) / Leaving(i) / Frontier(i) mirror the three
//     per-edge vectors a ZDD transition function needs to know which
//     vertex state slots to read, mutate, and retire.
//   - Schedule.Slot(v) assigns each vertex a small integer position that
//     is reused once the vertex leaves the frontier, so a spec's
//     per-state array never needs more than MaxWidth() live slots.
//
// Why:
//
//   - A ZDD transition only needs state for vertices currently on the
//     frontier; recycling slot positions (rather than indexing by raw
//     vertex id) is what keeps the per-node state array at O(frontier
//     width) instead of O(n), which is the entire point of the method.
//
// Errors:
//
//	ErrEmptyGraph - the graph has no edges to schedule.
package frontier
