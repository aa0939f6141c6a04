// Package builder assembles core.Graph fixtures deterministically.
//
// What:
//
//   - A Constructor is a function that mutates a *core.Graph: AddVertex /
//     AddEdge calls made in a fixed, documented order. BuildGraph runs one
//     or more Constructors in sequence against a single Graph.
//   - Vertex labels come from an IDFn, customizable via BuilderOption, so
//     a caller can compose constructors (e.g. a grid plus an overlay) and
//     still get predictable, inspectable labels.
//
// Why:
//
//   - Graph.Edges() order fixes ZDD variable order downstream, so every
//     constructor here documents its edge emission order explicitly rather
//     than leaving it to map iteration or library defaults.
//
// Errors:
//
//	ErrTooFewVertices - a size parameter (n, rows, cols) is below the
//	                    constructor's minimum.
//	ErrNeedRandSource - RandomSparse was asked to sample edges without an
//	                    RNG configured via WithSeed/WithRand.
package builder
