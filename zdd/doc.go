// Package zdd builds a Zero-suppressed Decision Diagram from a
// specs.Spec and evaluates it: cardinality, enumeration support, and
// DOT output.
//
// What:
//
//   - Build walks a Spec top-down from level m to level 1, calling
//     Init once and Transition once per branch value of each
//     (level, scratch) pair it has not already seen, memoizing by that pair so that equivalent
//     partial states collapse onto the same Node - this is the ZDD
//     half of the frontier method, the specs package supplies only
//     the transition function.
//   - A Diagram exposes its root Node and the two fixed terminals
//     (Zero, One); Cardinality counts root-to-One paths with
//     arbitrary-precision arithmetic, since the accepted-subgraph
//     count can exceed 64 bits even for modest grids (spec.md E1-E3).
//
// Why:
//
//   - spec.md frames the ZDD engine as an external collaborator whose
//     only obligation to the core is invoking Init/Transition; what it
//     explicitly rules out is a general-purpose, persistable BDD/ZDD
//     library (serialization, disk storage, cross-diagram boolean
//     operations). This package is the minimal construction,
//     counting, and rendering surface this module's CLI needs to
//     actually run a Spec end to end, nothing more.
//
// Errors:
//
//	ErrArityMismatch - a Spec announced an Arity outside [2, 3], the
//	                   only branch widths any family in this module uses.
package zdd
