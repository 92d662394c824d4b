package grammar

// FirstMap holds FIRST(X) for every symbol of the grammar: the terminals
// (and possibly Epsilon) that can begin a derivation from X.
type FirstMap map[Symbol]SymbolSet

// ComputeFirst runs the FIRST fixed point. Every entry only grows and is
// bounded by the terminal alphabet plus Epsilon, so the loop terminates.
func ComputeFirst(g *Grammar) FirstMap {
	first := FirstMap{
		Epsilon:   NewSymbolSet(Epsilon),
		EndMarker: NewSymbolSet(EndMarker),
	}
	for _, nt := range g.NonTerminals() {
		first[nt] = NewSymbolSet()
	}
	for _, prod := range g.Productions {
		for _, sym := range prod.RHS {
			if _, ok := first[sym]; ok {
				continue
			}
			if sym.IsNonTerminal() {
				// A nonterminal that never occurs on a left-hand side
				// derives nothing; its FIRST set stays empty.
				first[sym] = NewSymbolSet()
			} else {
				first[sym] = NewSymbolSet(sym)
			}
		}
	}

	for {
		changed := false
		for _, prod := range g.Productions {
			acc := first[prod.LHS]
			for sym := range FirstOfString(first, prod.RHS) {
				if acc.add(sym) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return first
}

// FirstOfString computes FIRST of a symbol sequence against the current
// map: {Epsilon} for the empty sequence, otherwise the union of the
// prefix FIRST sets up to and including the first non-nullable symbol,
// with Epsilon added only when every symbol is nullable. It is the shared
// primitive of the FIRST and FOLLOW fixed points and of LL(1) table
// construction.
func FirstOfString(first FirstMap, seq []Symbol) SymbolSet {
	result := NewSymbolSet()
	if len(seq) == 0 {
		result.add(Epsilon)
		return result
	}
	for _, sym := range seq {
		f := first[sym]
		for s := range f {
			if s != Epsilon {
				result.add(s)
			}
		}
		if !f.Has(Epsilon) {
			return result
		}
	}
	result.add(Epsilon)
	return result
}
