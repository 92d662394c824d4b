package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Youngermaster/cfgparser/grammar"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "elimlr <input file path>",
		Short:   "Eliminate left recursion from grammars",
		Example: `  cfgparser elimlr cases.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runElimLR,
	}
	rootCmd.AddCommand(cmd)
}

// runElimLR processes case-led input: a case count, then per case a
// count-led grammar in the usual textual format.
func runElimLR(cmd *cobra.Command, args []string) error {
	lines, err := readLines(args[0])
	if err != nil {
		return fmt.Errorf("cannot read the input %v: %w", args[0], err)
	}
	if len(lines) == 0 {
		return fmt.Errorf("empty input")
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return fmt.Errorf("the first line must declare the number of cases: %q", lines[0])
	}

	at := 1
	for i := 0; i < count; i++ {
		if at >= len(lines) {
			return fmt.Errorf("case %v: missing grammar", i+1)
		}
		k, err := strconv.Atoi(strings.TrimSpace(lines[at]))
		if err != nil || k < 0 || at+k+1 > len(lines) {
			return fmt.Errorf("case %v: bad production count: %q", i+1, lines[at])
		}

		g, err := grammar.FromLines(lines[at : at+k+1])
		if err != nil {
			return fmt.Errorf("case %v: %w", i+1, err)
		}
		at += k + 1

		out, err := grammar.EliminateLeftRecursion(g)
		if err != nil {
			return fmt.Errorf("case %v: %w", i+1, err)
		}
		for _, line := range out.ToLines() {
			fmt.Println(line)
		}
		if i < count-1 {
			fmt.Println()
		}
	}
	return nil
}
