package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cfgparser",
	Short: "Analyze context-free grammars and parse strings against them",
	Long: `cfgparser analyzes a context-free grammar, decides whether it is LL(1)
and/or SLR(1), and parses input strings with the generated tables.
It also bundles two smaller transformations: left-recursion elimination
and DFA equivalent-state detection.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

// readLines reads a whole file as trimmed lines, skipping blank ones.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimRight(s.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
