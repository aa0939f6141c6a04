package zdd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/specs"
)

// Build constructs a Diagram from spec by recursive top-down
// descent: Init seeds the root scratch, and Transition is called once
// per (level, scratch) pair not already memoized, with a fresh copy of
// scratch per branch value since a Spec is free to mutate its input in
// place. Two branches that reach the same (level, scratch) collapse
// onto the same Node, the frontier method's entire payoff.
func Build(spec specs.Spec, opts ...Option) (*Diagram, error) {
	arity := spec.Arity()
	if arity != 2 && arity != 3 {
		return nil, fmt.Errorf("zdd: Build: arity=%d: %w", arity, ErrArityMismatch)
	}

	cfg := newBuildConfig(opts...)
	b := &builder{spec: spec, arity: arity, memo: make(map[string]NodeID), cfg: cfg}

	scratch := make([]int64, spec.ArrayWidth())
	rootLevel := spec.Init(scratch)

	root, err := b.build(rootLevel, scratch)
	if err != nil {
		return nil, fmt.Errorf("zdd: Build: %w", err)
	}

	return &Diagram{root: root, nodes: b.nodes, arity: arity, numEdges: spec.NumEdges()}, nil
}

type builder struct {
	spec  specs.Spec
	arity int
	memo  map[string]NodeID
	nodes []Node
	cfg   buildConfig
}

func (b *builder) build(level int, scratch []int64) (NodeID, error) {
	key := stateKey(level, scratch)
	if id, ok := b.memo[key]; ok {
		return id, nil
	}

	children := make([]NodeID, b.arity)
	for value := 0; value < b.arity; value++ {
		branch := append([]int64(nil), scratch...)
		next := b.spec.Transition(branch, level, value)

		switch {
		case next == specs.Reject:
			children[value] = Zero
		case next == specs.Accept:
			children[value] = One
		case next >= 1 && next < level:
			child, err := b.build(next, branch)
			if err != nil {
				return 0, err
			}
			children[value] = child
		default:
			return 0, fmt.Errorf("zdd: Transition(level=%d, value=%d) returned invalid next level %d",
				level, value, next)
		}
	}

	id := firstInternalID + NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{Level: level, Children: children})
	b.memo[key] = id

	if b.cfg.progress != nil {
		b.cfg.progress(len(b.nodes))
	}

	return id, nil
}

// stateKey renders (level, scratch) into a string suitable as a map
// key. Equal scratch contents at equal levels must render identically
// regardless of how they were reached, which is exactly the
// frontier-method equivalence the ZDD is meant to exploit.
func stateKey(level int, scratch []int64) string {
	var sb strings.Builder
	sb.Grow(8 + 8*len(scratch))
	sb.WriteString(strconv.Itoa(level))
	sb.WriteByte('|')
	for _, s := range scratch {
		sb.WriteString(strconv.FormatInt(s, 10))
		sb.WriteByte(',')
	}
	return sb.String()
}
