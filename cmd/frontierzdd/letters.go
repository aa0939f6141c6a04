package main

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/frontier"
	"github.com/katalvlaran/lvlath/specs"
)

// letterIPreset builds the degree-specified family matching the
// original program's --letter_I/--letter_L constants: a 3-vertex path
// graph whose middle vertex must end at degree exactly 2 and whose
// outer two are unconstrained, so the accepted subgraphs trace the
// shape of the letter I (or L, depending on which edge is taken).
func letterIPreset(g *core.Graph, sched *frontier.Schedule) (*specs.DegreeSpecified, error) {
	if n := g.VertexCount(); n != 3 {
		return nil, fmt.Errorf("--letter_I/--letter_L needs a 3-vertex graph, got %d vertices: %w", n, ErrUsage)
	}
	ranges := []specs.DegreeRange{
		{}, // index 0 unused
		{Lo: 0, Hi: specs.UnboundedDegree},
		{Lo: 2, Hi: 2},
		{Lo: 0, Hi: specs.UnboundedDegree},
	}
	return specs.NewDegreeSpecified(g, sched, ranges)
}

// letterPPreset builds the degree-specified family matching the
// original program's --letter_P constants: a 4-vertex graph whose
// second and fourth vertices must end at degree exactly 1, tracing the
// loop-and-tail shape of the letter P.
func letterPPreset(g *core.Graph, sched *frontier.Schedule) (*specs.DegreeSpecified, error) {
	if n := g.VertexCount(); n != 4 {
		return nil, fmt.Errorf("--letter_P needs a 4-vertex graph, got %d vertices: %w", n, ErrUsage)
	}
	ranges := []specs.DegreeRange{
		{}, // index 0 unused
		{Lo: 0, Hi: specs.UnboundedDegree},
		{Lo: 1, Hi: 1},
		{Lo: 0, Hi: specs.UnboundedDegree},
		{Lo: 1, Hi: 1},
	}
	return specs.NewDegreeSpecified(g, sched, ranges)
}
