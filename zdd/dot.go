package zdd

import (
	"fmt"
	"io"
)

// DumpDot writes a Graphviz rendering of d to w: the two terminals as
// boxes, every internal node as a circle labeled with its level (m..1
// top-down; the edge index is m - level), a dashed arc for branch
// value 0 (skip) and a solid arc for every nonzero branch value.
func (d *Diagram) DumpDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph ZDD {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, `  0 [shape=box,label="0"];`); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, `  1 [shape=box,label="1"];`); err != nil {
		return err
	}

	for i, n := range d.nodes {
		id := firstInternalID + NodeID(i)
		if _, err := fmt.Fprintf(w, "  %d [shape=circle,label=\"%d\"];\n", id, n.Level); err != nil {
			return err
		}
		for value, child := range n.Children {
			style := "dashed"
			if value > 0 {
				style = "solid"
			}
			if _, err := fmt.Fprintf(w, "  %d -> %d [style=%s,label=\"%d\"];\n", id, child, style, value); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
