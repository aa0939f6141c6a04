// Package core defines the Graph, Vertex, and Edge types consumed by the
// rest of this module, and the thread-safe primitives for building them.
//
// What:
//
//   - Graph is an undirected multigraph over vertices 1..n, with an
//     immutable, insertion-ordered edge list e_0..e_{m-1}. Edge order is
//     caller-controlled and fixes the ZDD variable order used downstream
//     by frontier and specs: Graph never reorders or deduplicates edges.
//   - Vertex identity is an int in 1..n; ReadEdgeList maps arbitrary string
//     tokens to consecutive ids in first-seen order, per the on-disk
//     edge-list format (one "u v" pair per line, no header, no comments).
//
// Why:
//
//   - The frontier method is order-sensitive: the same topology produces
//     different frontier widths for different edge orders. Keeping Graph
//     a thin, order-preserving record (rather than an adjacency-indexed
//     structure that would normalize or reorder edges) is what lets
//     frontier.Build derive entering/leaving/frontier vectors directly
//     from Graph.Edges().
//
// Errors:
//
//	ErrEmptyVertexLabel - a vertex token was the empty string.
//	ErrNoVertices       - the graph has zero vertices.
//	ErrNoEdges          - the graph has zero edges.
//	ErrMalformedLine     - an edge-list line did not contain exactly two tokens.
package core
