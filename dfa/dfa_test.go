package dfa

import (
	"strings"
	"testing"
)

func genDFA(t *testing.T, lines ...string) *DFA {
	t.Helper()

	dfas, err := ParseCases(append([]string{"1"}, lines...))
	if err != nil {
		t.Fatalf("failed to parse the automaton: %v", err)
	}
	return dfas[0]
}

func TestParseCases(t *testing.T) {
	dfas, err := ParseCases([]string{
		"2",
		"2",
		"a",
		"1",
		"0 1",
		"1 1",
		"3",
		"x y",
		"0 2",
		"2 1 0",
		"0 2 1",
		"1 0 2",
	})
	if err != nil {
		t.Fatalf("failed to parse the cases: %v", err)
	}
	if len(dfas) != 2 {
		t.Fatalf("unexpected case count; want: %v, got: %v", 2, len(dfas))
	}
	if dfas[0].NumStates != 2 || len(dfas[0].Alphabet) != 1 {
		t.Fatalf("unexpected first automaton: %+v", dfas[0])
	}
	if dfas[1].NumStates != 3 || len(dfas[1].Alphabet) != 2 {
		t.Fatalf("unexpected second automaton: %+v", dfas[1])
	}
	// Rows may arrive in any state order.
	if got := dfas[1].Transitions[2]; got[0] != 1 || got[1] != 0 {
		t.Fatalf("unexpected transitions for state 2: %v", got)
	}
}

func TestParseCasesError(t *testing.T) {
	tests := []struct {
		caption string
		lines   []string
	}{
		{
			caption: "empty input",
			lines:   []string{},
		},
		{
			caption: "non-numeric case count",
			lines:   []string{"x"},
		},
		{
			caption: "missing transition rows",
			lines:   []string{"1", "2", "a", "1", "0 1"},
		},
		{
			caption: "duplicate transition row",
			lines:   []string{"1", "2", "a", "1", "0 1", "0 0"},
		},
		{
			caption: "successor out of range",
			lines:   []string{"1", "2", "a", "1", "0 2", "1 1"},
		},
		{
			caption: "final state out of range",
			lines:   []string{"1", "2", "a", "5", "0 1", "1 1"},
		},
		{
			caption: "short transition row",
			lines:   []string{"1", "2", "ab cd", "1", "0 1", "1 1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if _, err := ParseCases(tt.lines); err == nil {
				t.Fatalf("an error must occur")
			}
		})
	}
}

func TestEquivalentPairs(t *testing.T) {
	tests := []struct {
		caption string
		lines   []string
		want    string
	}{
		{
			caption: "two mergeable pairs",
			lines: []string{
				"4",
				"a b",
				"2 3",
				"0 1 2",
				"1 1 3",
				"2 2 2",
				"3 3 3",
			},
			want: "(0, 1) (2, 3)",
		},
		{
			caption: "already minimal",
			lines: []string{
				"3",
				"a",
				"2",
				"0 1",
				"1 2",
				"2 2",
			},
			want: "",
		},
		{
			caption: "no final states makes every pair equivalent",
			lines: []string{
				"2",
				"a",
				"",
				"0 1",
				"1 0",
			},
			want: "(0, 1)",
		},
		{
			caption: "unreachable states are ignored",
			lines: []string{
				"3",
				"a",
				"1 2",
				"0 1",
				"1 1",
				"2 2",
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			d := genDFA(t, tt.lines...)
			if got := FormatPairs(d.EquivalentPairs()); got != tt.want {
				t.Fatalf("unexpected pairs; want: %q, got: %q", tt.want, got)
			}
		})
	}
}

func TestEquivalentPairsPropagatesMarks(t *testing.T) {
	// (0, 1) only becomes distinguishable after (1, 2) is marked
	// through (2, 3), so two refinement rounds are needed.
	d := genDFA(t,
		"4",
		"a",
		"3",
		"0 1",
		"1 2",
		"2 3",
		"3 3",
	)
	if got := FormatPairs(d.EquivalentPairs()); got != "" {
		t.Fatalf("all reachable pairs must be distinguishable; got: %q", got)
	}
}

func TestFormatPairs(t *testing.T) {
	got := FormatPairs([][2]int{{0, 1}, {2, 3}})
	if got != "(0, 1) (2, 3)" {
		t.Fatalf("unexpected rendering: %q", got)
	}
	if FormatPairs(nil) != "" {
		t.Fatalf("no pairs must render as the empty string")
	}
	if strings.TrimSpace(FormatPairs(nil)) != "" {
		t.Fatalf("no pairs must render without padding")
	}
}
