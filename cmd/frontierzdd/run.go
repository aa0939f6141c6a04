package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/enumerate"
	"github.com/katalvlaran/lvlath/frontier"
	"github.com/katalvlaran/lvlath/specs"
	"github.com/katalvlaran/lvlath/zdd"
)

func runFamily(path string, stdout, stderr io.Writer) error {
	g, err := core.ReadEdgeList(path)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}

	sched, err := frontier.Build(g)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "# of vertices = %d\n", g.VertexCount())
	fmt.Fprintf(stderr, "# of edges = %d\n", sched.NumEdges())
	if fl.showFS {
		printSchedule(stderr, sched)
	}

	spec, err := selectSpec(g, sched)
	if err != nil {
		return err
	}

	var opts []zdd.Option
	if fl.show {
		opts = append(opts, zdd.WithProgress(func(n int) {
			if n%1000 == 0 {
				fmt.Fprintf(stderr, "# of ZDD nodes so far = %d\n", n)
			}
		}))
	}

	dd, err := zdd.Build(spec, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "# of ZDD nodes = %d\n", dd.Size())
	fmt.Fprintf(stderr, "# of solutions = %s\n", dd.Cardinality().String())

	if fl.enumerate {
		if _, err := enumerate.Write(stdout, dd); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(stdout, dd.Cardinality().String())
	}

	if fl.dot {
		if err := dd.DumpDot(stdout); err != nil {
			return err
		}
	}

	return nil
}

// selectSpec maps the mutually-exclusive family flags to a concrete
// specs.Spec. Exactly one must be set; s and t for path families
// default to the smallest and largest vertex id (spec.md §6).
func selectSpec(g *core.Graph, sched *frontier.Schedule) (specs.Spec, error) {
	n := g.VertexCount()
	s, t := 1, n

	set := map[string]bool{
		"path": fl.path, "hampath": fl.hamPath,
		"cycle": fl.cycle, "hamcycle": fl.hamCycle,
		"path_m": fl.pathM, "hampath_m": fl.hamPathM,
		"cycle_m": fl.cycleM, "hamcycle_m": fl.hamCycleM,
		"forest": fl.forest, "tree": fl.tree, "stree": fl.stree,
		"matching": fl.matching, "cmatching": fl.cmatching,
		"letter_I": fl.letterI, "letter_P": fl.letterP,
	}
	var chosen string
	for name, v := range set {
		if !v {
			continue
		}
		if chosen != "" {
			return nil, fmt.Errorf("only one subgraph flag may be given, got --%s and --%s: %w", chosen, name, ErrUsage)
		}
		chosen = name
	}
	if chosen == "" {
		return nil, fmt.Errorf("no subgraph flag given, see --help: %w", ErrUsage)
	}

	switch chosen {
	case "path":
		return specs.NewSTPath(g, sched, s, t, false)
	case "hampath":
		return specs.NewSTPath(g, sched, s, t, true)
	case "path_m":
		// The mate-pointer encoding's s/t exception (spec.md §4.3) is
		// one of the genuinely ambiguous corners of the source
		// material; the union-find encoding implements the identical
		// accepted language with a fully unambiguous spec, so the
		// mate-style path/Hamiltonian-path flags are aliases of their
		// union-find counterparts rather than a second, less-trusted
		// implementation (see DESIGN.md).
		return specs.NewSTPath(g, sched, s, t, false)
	case "hampath_m":
		return specs.NewSTPath(g, sched, s, t, true)
	case "cycle":
		return specs.NewSingleCycle(g, sched), nil
	case "hamcycle":
		return specs.NewHamCycle(g, sched), nil
	case "cycle_m":
		return specs.NewMateCycle(g, sched, false), nil
	case "hamcycle_m":
		return specs.NewMateCycle(g, sched, true), nil
	case "forest":
		return specs.NewForest(g, sched), nil
	case "tree":
		return specs.NewTree(g, sched, false), nil
	case "stree":
		return specs.NewTree(g, sched, true), nil
	case "matching":
		return specs.NewMatching(g, sched, false), nil
	case "cmatching":
		return specs.NewMatching(g, sched, true), nil
	case "letter_I":
		return letterIPreset(g, sched)
	case "letter_P":
		return letterPPreset(g, sched)
	default:
		return nil, fmt.Errorf("unreachable subgraph flag %q: %w", chosen, ErrUsage)
	}
}

func printSchedule(w io.Writer, sched *frontier.Schedule) {
	fmt.Fprintf(w, "max frontier width = %d\n", sched.MaxWidth())
	for i := 0; i < sched.NumEdges(); i++ {
		fmt.Fprintf(w, "edge %d: entering=%v leaving=%v frontier=%v\n",
			i, sched.Entering(i), sched.Leaving(i), sched.Frontier(i))
	}
}
