package main

import (
	"fmt"

	"github.com/Youngermaster/cfgparser/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <grammar file path>",
		Short:   "Print FIRST/FOLLOW sets, parsing tables, and automaton states",
		Example: `  cfgparser show grammar.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	lines, err := readLines(args[0])
	if err != nil {
		return fmt.Errorf("cannot read the grammar %v: %w", args[0], err)
	}
	g, err := grammar.FromLines(lines)
	if err != nil {
		return err
	}

	first := grammar.ComputeFirst(g)
	follow := grammar.ComputeFollow(g, first)

	pterm.DefaultSection.Println("Grammar")
	for _, line := range g.ToLines() {
		fmt.Println(line)
	}

	pterm.DefaultSection.Println("FIRST and FOLLOW")
	renderTable(grammar.DescribeSets(g, first, follow))

	ll1, err := grammar.BuildLL1Table(g, first, follow)
	if err != nil {
		pterm.DefaultSection.Println("LL(1)")
		pterm.Warning.Println(err)
	} else {
		renderLL1Report(ll1)
	}

	slr1, err := grammar.BuildSLR1Tables(g, follow)
	if err != nil {
		pterm.DefaultSection.Println("SLR(1)")
		pterm.Warning.Println(err)
		pterm.DefaultSection.Println("LR(0) states")
		renderTable(grammar.DescribeLR0States(g))
	} else {
		renderSLR1Report(slr1)
	}

	return nil
}

func renderLL1Report(t *grammar.LL1Table) {
	pterm.DefaultSection.Println("LL(1) table")
	renderTable(t.Describe())
}

func renderSLR1Report(t *grammar.SLR1Tables) {
	pterm.DefaultSection.Println("LR(0) states")
	renderTable(t.DescribeStates())
	pterm.DefaultSection.Println("ACTION table")
	renderTable(t.DescribeActions())
	pterm.DefaultSection.Println("GOTO table")
	renderTable(t.DescribeGotos())
}

func renderTable(rows [][]string) {
	err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(rows)).Render()
	if err != nil {
		pterm.Error.Println(err)
	}
}
