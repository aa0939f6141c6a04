// Package enumerate walks a constructed zdd.Diagram and prints one
// line per accepted edge subset (spec.md §4.6).
//
// What:
//
//   - Write performs a plain recursive descent from the diagram's
//     root, visiting both children of every internal node (shared
//     nodes are revisited once per incoming path on purpose: distinct
//     root-to-accept paths are distinct accepted sets even when they
//     pass through the same shared node).
//   - On reaching the accept terminal it prints, in descending edge
//     order m-1..0, the branch value recorded for that edge on the
//     current path, or 0 if the edge was never decided away from its
//     default.
//
// Why:
//
//   - This is a thin reporting layer over zdd.Diagram; all the
//     interesting state lives in the Spec that built it, so Write
//     carries none of its own beyond the current path's taken-edge
//     stack.
package enumerate
