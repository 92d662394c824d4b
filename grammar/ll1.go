package grammar

import "fmt"

// NotLL1Error reports a predictive-table collision: two different
// productions claim the same (nonterminal, lookahead) cell. It is an
// expected outcome, not a failure of the analysis; callers typically fall
// back to the SLR(1) pipeline.
type NotLL1Error struct {
	NonTerminal Symbol
	Lookahead   Symbol
	Prod1       *Production
	Prod2       *Production
}

func (e *NotLL1Error) Error() string {
	return fmt.Sprintf("not LL(1): M[%v, %v] is claimed by both %v and %v", e.NonTerminal, e.Lookahead, e.Prod1, e.Prod2)
}

type ll1Key struct {
	nonTerminal Symbol
	lookahead   Symbol
}

// LL1Table is the predictive parsing table M[A, a] -> production, with at
// most one entry per cell.
type LL1Table struct {
	grammar *Grammar
	entries map[ll1Key]*Production
}

// BuildLL1Table fills the predictive table from FIRST/FOLLOW: for each
// production A -> α the FIRST(α) terminals select it, and when α is
// nullable every FOLLOW(A) symbol selects it too. Any cell collision
// between different productions makes the grammar not LL(1).
func BuildLL1Table(g *Grammar, first FirstMap, follow FollowMap) (*LL1Table, error) {
	t := &LL1Table{
		grammar: g,
		entries: map[ll1Key]*Production{},
	}
	for _, prod := range g.Productions {
		f := FirstOfString(first, prod.RHS)
		for _, sym := range f.Sorted() {
			if sym == Epsilon {
				continue
			}
			if err := t.write(prod.LHS, sym, prod); err != nil {
				return nil, err
			}
		}
		if f.Has(Epsilon) {
			for _, sym := range follow[prod.LHS].Sorted() {
				if err := t.write(prod.LHS, sym, prod); err != nil {
					return nil, err
				}
			}
		}
	}
	return t, nil
}

func (t *LL1Table) write(nt, lookahead Symbol, prod *Production) error {
	key := ll1Key{nonTerminal: nt, lookahead: lookahead}
	if existing, ok := t.entries[key]; ok && !existing.Equal(prod) {
		return &NotLL1Error{
			NonTerminal: nt,
			Lookahead:   lookahead,
			Prod1:       existing,
			Prod2:       prod,
		}
	}
	t.entries[key] = prod
	return nil
}

// Lookup returns the production for a (nonterminal, lookahead) cell.
func (t *LL1Table) Lookup(nt, lookahead Symbol) (*Production, bool) {
	prod, ok := t.entries[ll1Key{nonTerminal: nt, lookahead: lookahead}]
	return prod, ok
}

// Parse runs the predictive stack machine and reports whether the input
// belongs to the grammar's language. Characters outside the terminal
// alphabet classify as ordinary non-matching symbols and reject.
func (t *LL1Table) Parse(input string) bool {
	in := symbolsOf(input)
	in = append(in, EndMarker)

	stack := []Symbol{EndMarker, t.grammar.Start}
	idx := 0

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		cur := EndMarker
		if idx < len(in) {
			cur = in[idx]
		}

		if top == cur {
			stack = stack[:len(stack)-1]
			idx++
			continue
		}

		if top.IsNonTerminal() {
			prod, ok := t.Lookup(top, cur)
			if !ok {
				return false
			}
			stack = stack[:len(stack)-1]
			if !prod.IsEpsilon() {
				for i := len(prod.RHS) - 1; i >= 0; i-- {
					stack = append(stack, prod.RHS[i])
				}
			}
			continue
		}

		// Terminal or end marker on top that does not match the input.
		return false
	}

	return idx == len(in)
}
