package grammar

import (
	"errors"
	"testing"
)

func genLL1(t *testing.T, lines ...string) *LL1Table {
	t.Helper()

	g := genGrammar(t, lines...)
	first := ComputeFirst(g)
	follow := ComputeFollow(g, first)
	table, err := BuildLL1Table(g, first, follow)
	if err != nil {
		t.Fatalf("failed to build the LL(1) table: %v", err)
	}
	return table
}

func TestBuildLL1Table(t *testing.T) {
	table := genLL1(t,
		"5",
		"S -> TX",
		"X -> +TX e",
		"T -> FY",
		"Y -> *FY e",
		"F -> (S) i",
	)

	tests := []struct {
		nt        byte
		lookahead byte
		prod      string
	}{
		{nt: 'S', lookahead: 'i', prod: "S -> TX"},
		{nt: 'S', lookahead: '(', prod: "S -> TX"},
		{nt: 'X', lookahead: '+', prod: "X -> +TX"},
		{nt: 'X', lookahead: ')', prod: "X -> e"},
		{nt: 'X', lookahead: '$', prod: "X -> e"},
		{nt: 'Y', lookahead: '+', prod: "Y -> e"},
		{nt: 'F', lookahead: '(', prod: "F -> (S)"},
	}
	for _, tt := range tests {
		prod, ok := table.Lookup(ClassifySymbol(tt.nt), ClassifySymbol(tt.lookahead))
		if !ok {
			t.Fatalf("M[%c, %c] must be occupied", tt.nt, tt.lookahead)
		}
		if prod.String() != tt.prod {
			t.Fatalf("unexpected entry at M[%c, %c]; want: %v, got: %v", tt.nt, tt.lookahead, tt.prod, prod)
		}
	}

	if _, ok := table.Lookup(ClassifySymbol('S'), ClassifySymbol('+')); ok {
		t.Fatalf("M[S, +] must be empty")
	}
}

func TestBuildLL1TableConflict(t *testing.T) {
	tests := []struct {
		caption   string
		lines     []string
		nt        byte
		lookahead byte
	}{
		{
			caption:   "left recursion",
			lines:     []string{"1", "S -> Sa b"},
			nt:        'S',
			lookahead: 'b',
		},
		{
			caption:   "common prefix",
			lines:     []string{"1", "S -> ab ac"},
			nt:        'S',
			lookahead: 'a',
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := genGrammar(t, tt.lines...)
			first := ComputeFirst(g)
			follow := ComputeFollow(g, first)

			_, err := BuildLL1Table(g, first, follow)
			var nerr *NotLL1Error
			if !errors.As(err, &nerr) {
				t.Fatalf("a NotLL1Error must occur: %v", err)
			}
			if nerr.NonTerminal != ClassifySymbol(tt.nt) || nerr.Lookahead != ClassifySymbol(tt.lookahead) {
				t.Fatalf("unexpected conflict cell; want: M[%c, %c], got: M[%v, %v]", tt.nt, tt.lookahead, nerr.NonTerminal, nerr.Lookahead)
			}
			if nerr.Prod1 == nil || nerr.Prod2 == nil || nerr.Prod1.Equal(nerr.Prod2) {
				t.Fatalf("a conflict must carry the two colliding productions: %v", nerr)
			}
		})
	}
}

func TestBuildLL1TableIsDeterministic(t *testing.T) {
	g := genGrammar(t,
		"1",
		"S -> Sa b",
	)
	first := ComputeFirst(g)
	follow := ComputeFollow(g, first)

	_, err1 := BuildLL1Table(g, first, follow)
	_, err2 := BuildLL1Table(g, first, follow)
	var nerr1, nerr2 *NotLL1Error
	if !errors.As(err1, &nerr1) || !errors.As(err2, &nerr2) {
		t.Fatalf("both runs must fail: %v, %v", err1, err2)
	}
	if nerr1.NonTerminal != nerr2.NonTerminal || nerr1.Lookahead != nerr2.Lookahead ||
		!nerr1.Prod1.Equal(nerr2.Prod1) || !nerr1.Prod2.Equal(nerr2.Prod2) {
		t.Fatalf("the reported conflict must be identical across runs; got: %v and %v", nerr1, nerr2)
	}
}

func TestLL1Parse(t *testing.T) {
	table := genLL1(t,
		"5",
		"S -> TX",
		"X -> +TX e",
		"T -> FY",
		"Y -> *FY e",
		"F -> (S) i",
	)

	tests := []struct {
		input    string
		accepted bool
	}{
		{input: "i", accepted: true},
		{input: "i+i*i", accepted: true},
		{input: "(i+i)*i", accepted: true},
		{input: "((i))", accepted: true},
		{input: "i+", accepted: false},
		{input: "", accepted: false},
		{input: "i+i)", accepted: false},
		{input: "(i", accepted: false},
		// x is outside the terminal alphabet.
		{input: "x", accepted: false},
		{input: "i+x", accepted: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := table.Parse(tt.input); got != tt.accepted {
				t.Fatalf("unexpected result for %q; want: %v, got: %v", tt.input, tt.accepted, got)
			}
		})
	}
}

func TestLL1ParseNullable(t *testing.T) {
	table := genLL1(t,
		"3",
		"S -> AB",
		"A -> a e",
		"B -> b",
	)

	tests := []struct {
		input    string
		accepted bool
	}{
		{input: "ab", accepted: true},
		{input: "b", accepted: true},
		{input: "a", accepted: false},
		{input: "abb", accepted: false},
		{input: "", accepted: false},
	}
	for _, tt := range tests {
		if got := table.Parse(tt.input); got != tt.accepted {
			t.Fatalf("unexpected result for %q; want: %v, got: %v", tt.input, tt.accepted, got)
		}
	}
}

func TestLL1ParseAcceptsAllShortDerivations(t *testing.T) {
	lines := []string{
		"5",
		"S -> TX",
		"X -> +TX e",
		"T -> FY",
		"Y -> *FY e",
		"F -> (S) i",
	}
	g := genGrammar(t, lines...)
	table := genLL1(t, lines...)

	sentences := deriveSentences(g, 7)
	if len(sentences) == 0 {
		t.Fatalf("the enumeration must produce sentences")
	}
	for _, s := range sentences {
		if !table.Parse(s) {
			t.Fatalf("the driver must accept the derivable sentence %q", s)
		}
	}
}
