package grammar

// FollowMap holds FOLLOW(A) for every nonterminal: the terminals (and
// possibly the end marker) that can immediately follow A in a derivation
// from the start symbol.
type FollowMap map[Symbol]SymbolSet

// ComputeFollow runs the FOLLOW fixed point over a grammar and its FIRST
// map. FOLLOW(start) contains the end marker from the start.
func ComputeFollow(g *Grammar, first FirstMap) FollowMap {
	follow := FollowMap{}
	for _, nt := range g.NonTerminals() {
		follow[nt] = NewSymbolSet()
	}
	for _, prod := range g.Productions {
		for _, sym := range prod.RHS {
			if sym.IsNonTerminal() {
				if _, ok := follow[sym]; !ok {
					follow[sym] = NewSymbolSet()
				}
			}
		}
	}
	follow[g.Start].add(EndMarker)

	for {
		changed := false
		for _, prod := range g.Productions {
			for i, sym := range prod.RHS {
				if !sym.IsNonTerminal() {
					continue
				}
				rest := FirstOfString(first, prod.RHS[i+1:])
				acc := follow[sym]
				for s := range rest {
					if s == Epsilon {
						continue
					}
					if acc.add(s) {
						changed = true
					}
				}
				if rest.Has(Epsilon) {
					for s := range follow[prod.LHS] {
						if acc.add(s) {
							changed = true
						}
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	return follow
}
