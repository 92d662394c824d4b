package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Youngermaster/cfgparser/grammar"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	grammar *string
	tables  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Decide LL(1)/SLR(1) membership and parse strings",
		Example: `  cfgparser parse -g grammar.txt`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.grammar = cmd.Flags().StringP("grammar", "g", "", "grammar file path (default stdin)")
	parseFlags.tables = cmd.Flags().Bool("tables", false, "print the parsing tables and automaton states before parsing")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var g *grammar.Grammar
	var in lineReader
	if *parseFlags.grammar != "" {
		lines, err := readLines(*parseFlags.grammar)
		if err != nil {
			return fmt.Errorf("cannot read the grammar %v: %w", *parseFlags.grammar, err)
		}
		g, err = grammar.FromLines(lines)
		if err != nil {
			return err
		}
		in, err = newStdinLineReader("> ")
		if err != nil {
			return err
		}
	} else {
		br := bufio.NewReader(os.Stdin)
		var err error
		g, err = readGrammar(br)
		if err != nil {
			return err
		}
		in = newDirectLineReader(br)
	}
	defer in.Close()

	first := grammar.ComputeFirst(g)
	follow := grammar.ComputeFollow(g, first)

	ll1, ll1Err := grammar.BuildLL1Table(g, first, follow)
	slr1, slr1Err := grammar.BuildSLR1Tables(g, follow)

	switch {
	case ll1Err == nil && slr1Err == nil:
		return runParserMenu(ll1, slr1, in)
	case ll1Err == nil:
		fmt.Println("Grammar is LL(1).")
		if *parseFlags.tables {
			renderLL1Report(ll1)
		}
		return parseStrings(in, ll1.Parse)
	case slr1Err == nil:
		fmt.Println("Grammar is SLR(1).")
		if *parseFlags.tables {
			renderSLR1Report(slr1)
		}
		return parseStrings(in, slr1.Parse)
	default:
		fmt.Println("Grammar is neither LL(1) nor SLR(1).")
		fmt.Println(ll1Err)
		fmt.Println(slr1Err)
		return nil
	}
}

// readGrammar consumes exactly the count line and the declared number of
// production lines, leaving the rest of the reader for parse input.
func readGrammar(br *bufio.Reader) (*grammar.Grammar, error) {
	in := newDirectLineReader(br)

	countLine, err := in.ReadLine()
	if err != nil {
		return nil, fmt.Errorf("cannot read the grammar: %w", err)
	}
	lines := []string{countLine}

	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err == nil {
		for i := 0; i < count; i++ {
			line, err := in.ReadLine()
			if err != nil {
				break
			}
			lines = append(lines, line)
		}
	}

	return grammar.FromLines(lines)
}

func runParserMenu(ll1 *grammar.LL1Table, slr1 *grammar.SLR1Tables, in lineReader) error {
	for {
		fmt.Println("Select a parser (T: for LL(1), B: for SLR(1), Q: quit):")
		choice, err := in.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch strings.TrimSpace(choice) {
		case "Q", "q":
			return nil
		case "T", "t":
			if *parseFlags.tables {
				renderLL1Report(ll1)
			}
			if err := parseStrings(in, ll1.Parse); err != nil {
				return err
			}
		case "B", "b":
			if *parseFlags.tables {
				renderSLR1Report(slr1)
			}
			if err := parseStrings(in, slr1.Parse); err != nil {
				return err
			}
		}
	}
}

// parseStrings classifies input lines as yes/no until an empty line or
// the end of input.
func parseStrings(in lineReader, parse func(string) bool) error {
	for {
		line, err := in.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		if parse(line) {
			fmt.Println("yes")
		} else {
			fmt.Println("no")
		}
	}
}
