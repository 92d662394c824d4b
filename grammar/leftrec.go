package grammar

import "fmt"

// EliminateLeftRecursion returns a weakly equivalent grammar without left
// recursion, following Aho et al. §4.3.3: in the original nonterminal
// order, leading occurrences of earlier nonterminals are substituted
// away, then immediate left recursion is removed with a fresh
// nonterminal. Fresh names are unused single letters scanned from Z down
// to A. The input grammar is not modified.
func EliminateLeftRecursion(g *Grammar) (*Grammar, error) {
	original := append([]Symbol{}, g.NonTerminals()...)
	order := append([]Symbol{}, original...)

	alts := map[Symbol][][]Symbol{}
	for _, prod := range g.Productions {
		alts[prod.LHS] = append(alts[prod.LHS], prod.RHS)
	}

	for i, ai := range original {
		for _, aj := range original[:i] {
			var expanded [][]Symbol
			changed := false
			for _, alt := range alts[ai] {
				if len(alt) > 0 && alt[0] == aj {
					changed = true
					for _, sub := range alts[aj] {
						expanded = append(expanded, concatAlts(sub, alt[1:]))
					}
				} else {
					expanded = append(expanded, alt)
				}
			}
			if changed {
				alts[ai] = expanded
			}
		}
		if err := eliminateImmediate(alts, ai, &order); err != nil {
			return nil, err
		}
	}

	var prods []*Production
	for _, nt := range order {
		for _, alt := range alts[nt] {
			prods = append(prods, &Production{LHS: nt, RHS: alt})
		}
	}
	return newGrammar(prods)
}

// eliminateImmediate rewrites A -> Aα1 | .. | Aαr | β1 | .. | βs into
// A -> β1A' | .. | βsA' and A' -> α1A' | .. | αrA' | e. A grammar without
// immediate left recursion on A is left untouched.
func eliminateImmediate(alts map[Symbol][][]Symbol, a Symbol, order *[]Symbol) error {
	var alpha, beta [][]Symbol
	for _, alt := range alts[a] {
		if len(alt) > 0 && alt[0] == a {
			alpha = append(alpha, alt[1:])
		} else {
			beta = append(beta, alt)
		}
	}
	if len(alpha) == 0 {
		return nil
	}

	fresh, err := freshNonTerminal(alts)
	if err != nil {
		return err
	}

	var newA [][]Symbol
	if len(beta) == 0 {
		// Degenerate case: every alternative of A was left recursive.
		newA = [][]Symbol{{fresh}}
	} else {
		for _, b := range beta {
			newA = append(newA, concatAlts(b, []Symbol{fresh}))
		}
	}

	var newFresh [][]Symbol
	for _, al := range alpha {
		newFresh = append(newFresh, concatAlts(al, []Symbol{fresh}))
	}
	newFresh = append(newFresh, []Symbol{Epsilon})

	alts[a] = newA
	alts[fresh] = newFresh
	*order = append(*order, fresh)
	return nil
}

// concatAlts joins two alternative fragments, dropping explicit Epsilon
// symbols; the empty concatenation is the epsilon alternative.
func concatAlts(a, b []Symbol) []Symbol {
	out := make([]Symbol, 0, len(a)+len(b))
	for _, sym := range a {
		if sym != Epsilon {
			out = append(out, sym)
		}
	}
	for _, sym := range b {
		if sym != Epsilon {
			out = append(out, sym)
		}
	}
	if len(out) == 0 {
		return []Symbol{Epsilon}
	}
	return out
}

func freshNonTerminal(alts map[Symbol][][]Symbol) (Symbol, error) {
	for c := byte('Z'); c >= 'A'; c-- {
		sym := Symbol{Kind: SymbolNonTerminal, Char: c}
		if _, used := alts[sym]; !used {
			return sym, nil
		}
	}
	return Symbol{}, fmt.Errorf("no unused single-letter nonterminal is left for left-recursion elimination")
}
