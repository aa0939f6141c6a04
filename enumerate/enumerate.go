package enumerate

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/zdd"
)

// Write enumerates every accepted edge subset in d and writes one
// line per subset to w: m space-separated branch values in descending
// edge order m-1..0. Returns the number of lines written, or the
// first write error encountered.
func Write(w io.Writer, d *zdd.Diagram) (int, error) {
	m := d.NumEdges()
	path := make(map[int]int, m)
	count := 0

	var walk func(id zdd.NodeID) error
	walk = func(id zdd.NodeID) error {
		switch id {
		case zdd.Zero:
			return nil
		case zdd.One:
			count++
			return emit(w, m, path)
		}

		node := d.Node(id)
		edgeIndex := m - node.Level
		for value, child := range node.Children {
			if value != 0 {
				path[edgeIndex] = value
			}
			if err := walk(child); err != nil {
				return err
			}
			if value != 0 {
				delete(path, edgeIndex)
			}
		}
		return nil
	}

	if err := walk(d.Root()); err != nil {
		return count, err
	}
	return count, nil
}

func emit(w io.Writer, m int, path map[int]int) error {
	tokens := make([]string, m)
	for i := 0; i < m; i++ {
		tokens[m-1-i] = strconv.Itoa(path[i])
	}
	_, err := fmt.Fprintln(w, strings.Join(tokens, " "))
	return err
}
