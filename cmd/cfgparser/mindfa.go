package main

import (
	"fmt"

	"github.com/Youngermaster/cfgparser/dfa"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "mindfa <input file path>",
		Short:   "Print equivalent state pairs of DFAs",
		Example: `  cfgparser mindfa cases.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runMinDFA,
	}
	rootCmd.AddCommand(cmd)
}

func runMinDFA(cmd *cobra.Command, args []string) error {
	lines, err := readLines(args[0])
	if err != nil {
		return fmt.Errorf("cannot read the input %v: %w", args[0], err)
	}
	dfas, err := dfa.ParseCases(lines)
	if err != nil {
		return err
	}
	for _, d := range dfas {
		fmt.Println(dfa.FormatPairs(d.EquivalentPairs()))
	}
	return nil
}
