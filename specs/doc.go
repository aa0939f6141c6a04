// Package specs implements the per-family transition functions consumed
// by the zdd package: one Spec per constrained-subgraph family (single
// cycle, Hamiltonian cycle, s-t path, forest, tree, matching, mate-style
// path/cycle, two-colour cycles, degree-specified subgraphs).
//
// What:
//
//   - A Spec announces a scratch width (ArrayWidth) and an arity (the
//     number of branch values per edge, 2 for ordinary take/skip
//     decisions, 3 for the two-colour variant), then answers Init and
//     Transition calls from the zdd builder.
//   - Transition follows one scaffold in every family: admit vertices
//     newly on the frontier into fresh scratch slots, apply the
//     take/skip decision to the two edge endpoints, retire vertices
//     leaving the frontier by checking their final per-vertex condition
//     and whether their connected component has just closed, and
//     finally hand back either a terminal verdict or the next level.
//
// Why:
//
//   - All nine families differ only in what a "fresh" slot looks like,
//     what a take decision does to the two endpoints, what a leaving
//     vertex must satisfy, and what happens when its component closes -
//     exactly the columns of the per-spec table each family's file
//     documents at its top. Factoring the scaffold into shared helpers
//     (componentClosed, mergeComponent) keeps each family file
//     to just its distinguishing rule.
//
// Errors:
//
//	ErrBadEndpoint - an s-t path family was asked to route through a
//	                 vertex id outside the graph.
package specs
