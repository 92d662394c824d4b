package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatError reports malformed grammar text. No partial Grammar is ever
// returned alongside one.
type FormatError struct {
	Line int // 1-based input line; 0 when the whole input is at fault
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %v: %v", e.Line, e.Msg)
	}
	return e.Msg
}

// Grammar owns an ordered sequence of productions. The order is
// semantically significant: it fixes production numbering and therefore
// the tie-breaking reported by table builders.
type Grammar struct {
	Productions []*Production
	Start       Symbol

	nonTerms []Symbol // first-seen order
	terms    SymbolSet
	prodMap  map[Symbol][]*Production
}

// FromLines builds a Grammar from count-led textual input: the first line
// declares the number of production lines, each following line is
// "A -> alt1 alt2 ..." where every alt is a concatenation of
// single-character symbols and space-separated alts are independent
// productions for the same left-hand side.
func FromLines(lines []string) (*Grammar, error) {
	if len(lines) == 0 {
		return nil, &FormatError{Msg: "empty grammar input"}
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, &FormatError{Line: 1, Msg: fmt.Sprintf("the first line must declare the number of production lines: %q", lines[0])}
	}
	if len(lines)-1 != count {
		return nil, &FormatError{Msg: fmt.Sprintf("declared %v production lines but got %v", count, len(lines)-1)}
	}

	var prods []*Production
	for i, line := range lines[1:] {
		ps, err := parseProductionLine(line)
		if err != nil {
			if ferr, ok := err.(*FormatError); ok {
				ferr.Line = i + 2
			}
			return nil, err
		}
		prods = append(prods, ps...)
	}

	return newGrammar(prods)
}

func parseProductionLine(line string) ([]*Production, error) {
	parts := strings.Split(line, "->")
	if len(parts) != 2 {
		return nil, &FormatError{Msg: fmt.Sprintf("a production needs a single \"->\" separator: %q", line)}
	}

	lhsText := strings.TrimSpace(parts[0])
	if len(lhsText) != 1 {
		return nil, &FormatError{Msg: fmt.Sprintf("the left-hand side must be a single character: %q", lhsText)}
	}
	lhs := ClassifySymbol(lhsText[0])
	if !lhs.IsNonTerminal() {
		return nil, &FormatError{Msg: fmt.Sprintf("the left-hand side must be an uppercase nonterminal: %q", lhsText)}
	}

	alts := strings.Fields(parts[1])
	if len(alts) == 0 {
		return nil, &FormatError{Msg: fmt.Sprintf("a production needs at least one alternative: %q", line)}
	}

	prods := make([]*Production, 0, len(alts))
	for _, alt := range alts {
		prods = append(prods, &Production{
			LHS: lhs,
			RHS: symbolsOf(alt),
		})
	}
	return prods, nil
}

func newGrammar(prods []*Production) (*Grammar, error) {
	g := &Grammar{
		Productions: prods,
		Start:       ClassifySymbol('S'),
		terms:       NewSymbolSet(),
		prodMap:     map[Symbol][]*Production{},
	}
	for _, prod := range prods {
		if _, ok := g.prodMap[prod.LHS]; !ok {
			g.nonTerms = append(g.nonTerms, prod.LHS)
		}
		g.prodMap[prod.LHS] = append(g.prodMap[prod.LHS], prod)
		for _, sym := range prod.RHS {
			if sym.IsTerminal() {
				g.terms.add(sym)
			}
		}
	}
	if len(g.prodMap[g.Start]) == 0 {
		return nil, &FormatError{Msg: "the start symbol S has no productions"}
	}
	return g, nil
}

// ProductionsOf returns the productions whose left-hand side is sym, in
// insertion order. The slice is empty for an unknown nonterminal; callers
// routinely query symbols that only occur in right-hand sides.
func (g *Grammar) ProductionsOf(sym Symbol) []*Production {
	return g.prodMap[sym]
}

// NonTerminals returns the nonterminals in first-seen order.
func (g *Grammar) NonTerminals() []Symbol {
	return g.nonTerms
}

// Terminals returns the terminal alphabet in the Symbol total order.
func (g *Grammar) Terminals() []Symbol {
	return g.terms.Sorted()
}

// ToLines renders the grammar back into the textual production format,
// grouping the alternatives of each nonterminal on one line.
func (g *Grammar) ToLines() []string {
	lines := make([]string, 0, len(g.nonTerms))
	for _, nt := range g.nonTerms {
		alts := make([]string, 0, len(g.prodMap[nt]))
		for _, prod := range g.prodMap[nt] {
			alts = append(alts, prod.rhsText())
		}
		lines = append(lines, fmt.Sprintf("%v -> %v", nt, strings.Join(alts, " ")))
	}
	return lines
}
