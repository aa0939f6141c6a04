package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type flags struct {
	path, hamPath             bool
	cycle, hamCycle           bool
	pathM, hamPathM           bool
	cycleM, hamCycleM         bool
	forest, tree, stree       bool
	matching, cmatching       bool
	letterI, letterP          bool
	show, dot, showFS, demo   bool
	enumerate                 bool
}

var fl flags

var rootCmd = &cobra.Command{
	Use:   "frontierzdd [flags] edgelist.txt",
	Short: "Count and enumerate constrained edge subsets of a graph via the frontier method",
	Long: `frontierzdd builds a Zero-suppressed Decision Diagram whose models are
exactly the edge subsets of a graph satisfying one constrained-subgraph
family - simple paths, single or Hamiltonian cycles, spanning structures,
matchings, or degree-specified subgraphs - using the frontier method.

Exactly one subgraph flag must be given (or --demo with none):

  --path, --hampath             simple / Hamiltonian s-t path
  --path_m, --hampath_m         aliases of --path / --hampath
  --cycle, --hamcycle           single / Hamiltonian cycle
  --cycle_m, --hamcycle_m       same, mate-pointer encoding
  --forest, --tree, --stree     forest / tree / spanning tree
  --matching, --cmatching       matching / perfect matching
  --letter_I, --letter_L        degree-2-joint 3-vertex preset
  --letter_P                    two-degree-1-loop 4-vertex preset`,
	Example: `  frontierzdd --cycle grid3x3.txt
  frontierzdd --stree k4.txt
  frontierzdd --demo`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Flags().BoolVar(&fl.path, "path", false, "simple s-t path")
	rootCmd.Flags().BoolVar(&fl.hamPath, "hampath", false, "Hamiltonian s-t path")
	rootCmd.Flags().BoolVar(&fl.cycle, "cycle", false, "single cycle")
	rootCmd.Flags().BoolVar(&fl.cycle, "letter_O", false, "alias of --cycle")
	_ = rootCmd.Flags().MarkHidden("letter_O")
	rootCmd.Flags().BoolVar(&fl.hamCycle, "hamcycle", false, "Hamiltonian cycle")
	rootCmd.Flags().BoolVar(&fl.pathM, "path_m", false, "alias of --path (deg/comp encoding)")
	rootCmd.Flags().BoolVar(&fl.hamPathM, "hampath_m", false, "alias of --hampath (deg/comp encoding)")
	rootCmd.Flags().BoolVar(&fl.cycleM, "cycle_m", false, "single cycle (mate encoding)")
	rootCmd.Flags().BoolVar(&fl.hamCycleM, "hamcycle_m", false, "Hamiltonian cycle (mate encoding)")
	rootCmd.Flags().BoolVar(&fl.forest, "forest", false, "forest (acyclic subgraph)")
	rootCmd.Flags().BoolVar(&fl.tree, "tree", false, "single tree")
	rootCmd.Flags().BoolVar(&fl.stree, "stree", false, "spanning tree")
	rootCmd.Flags().BoolVar(&fl.matching, "matching", false, "matching")
	rootCmd.Flags().BoolVar(&fl.cmatching, "cmatching", false, "perfect matching")
	rootCmd.Flags().BoolVar(&fl.letterI, "letter_I", false, "degree-2-joint 3-vertex preset")
	rootCmd.Flags().BoolVar(&fl.letterI, "letter_L", false, "alias of --letter_I")
	rootCmd.Flags().BoolVar(&fl.letterP, "letter_P", false, "two-degree-1-loop 4-vertex preset")

	rootCmd.Flags().BoolVar(&fl.show, "show", false, "print construction progress to stderr")
	rootCmd.Flags().BoolVar(&fl.dot, "dot", false, "dump the constructed ZDD as DOT to stdout")
	rootCmd.Flags().BoolVar(&fl.showFS, "show-fs", false, "dump the frontier schedule to stderr")
	rootCmd.Flags().BoolVar(&fl.demo, "demo", false, "run the grid/single-cycle OEIS self-check sweep (no positional argument)")
	rootCmd.Flags().BoolVar(&fl.enumerate, "enumerate", false, "print one line per accepted edge set instead of just the count")
}

// Execute runs the root command, printing any error to stderr before
// returning it; main maps a non-nil return to exit code 1.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if fl.demo {
		if len(args) != 0 {
			return fmt.Errorf("--demo takes no positional argument: %w", ErrUsage)
		}
		return runDemo(os.Stdout, os.Stderr)
	}

	if len(args) != 1 {
		return fmt.Errorf("expected exactly one positional edge-list path, got %d: %w", len(args), ErrUsage)
	}

	return runFamily(args[0], os.Stdout, os.Stderr)
}
