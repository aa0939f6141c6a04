// Command frontierzdd is the thin CLI driver spec.md §6 describes: it
// reads an edge-list file, builds a frontier schedule, selects one
// Frontier Specification from a mutually-exclusive set of flags, and
// reports either the cardinality or the full enumeration of accepted
// edge subsets.
//
// Usage:
//
//	frontierzdd [flags] edgelist.txt
//	frontierzdd --demo
//
// See the root command's Long help for the full flag reference.
package main
