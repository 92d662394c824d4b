package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// lr0Item is a production with a dot marking recognition progress.
//
// A -> a B c
//
// Dot | Dotted symbol | Item
// ----+---------------+-----------
// 0   | a             | A -> .aBc
// 1   | B             | A -> a.Bc
// 2   | c             | A -> aB.c
// 3   | none          | A -> aBc.
//
// The epsilon production has effective length 0, so A -> e yields the
// single, immediately reducible item A -> . and the automaton never
// shifts over Epsilon.
type lr0Item struct {
	prod *Production
	dot  int
}

func (i lr0Item) dottedSymbol() (Symbol, bool) {
	if i.dot < i.prod.rhsLen() {
		return i.prod.RHS[i.dot], true
	}
	return Symbol{}, false
}

func (i lr0Item) reducible() bool {
	return i.dot == i.prod.rhsLen()
}

func (i lr0Item) advance() lr0Item {
	return lr0Item{prod: i.prod, dot: i.dot + 1}
}

func (i lr0Item) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v -> ", i.prod.LHS)
	n := i.prod.rhsLen()
	for pos := 0; pos < n; pos++ {
		if pos == i.dot {
			b.WriteByte('.')
		}
		b.WriteString(i.prod.RHS[pos].String())
	}
	if i.dot == n {
		b.WriteByte('.')
	}
	return b.String()
}

// lr0State is a closed item set. items are canonically sorted by
// (production index, dot) so two states are structurally equal exactly
// when their keys match.
type lr0State struct {
	id    int
	items []lr0Item
}

type lr0Transition struct {
	state int
	sym   Symbol
}

type lr0Automaton struct {
	augProd   *Production
	states    []*lr0State
	gotos     map[lr0Transition]int
	prodIndex map[*Production]int
}

// genLR0Automaton builds the canonical LR(0) collection for the grammar
// augmented with ' -> S. State 0 is the closure of {' -> .S}; the
// worklist visits dotted symbols in the Symbol total order so state
// numbering is reproducible.
func genLR0Automaton(g *Grammar) *lr0Automaton {
	a := &lr0Automaton{
		augProd: &Production{
			LHS: augmentedStart,
			RHS: []Symbol{g.Start},
		},
		gotos:     map[lr0Transition]int{},
		prodIndex: map[*Production]int{},
	}
	a.prodIndex[a.augProd] = 0
	for i, prod := range g.Productions {
		a.prodIndex[prod] = i + 1
	}

	start := a.closure(g, []lr0Item{{prod: a.augProd}})
	a.states = []*lr0State{{id: 0, items: start}}
	ids := map[string]int{a.stateKey(start): 0}

	worklist := []*lr0State{a.states[0]}
	for len(worklist) > 0 {
		st := worklist[0]
		worklist = worklist[1:]

		for _, sym := range dottedSymbols(st.items) {
			var kernel []lr0Item
			for _, item := range st.items {
				if dotted, ok := item.dottedSymbol(); ok && dotted == sym {
					kernel = append(kernel, item.advance())
				}
			}
			next := a.closure(g, kernel)

			key := a.stateKey(next)
			id, known := ids[key]
			if !known {
				id = len(a.states)
				ids[key] = id
				ns := &lr0State{id: id, items: next}
				a.states = append(a.states, ns)
				worklist = append(worklist, ns)
			}
			a.gotos[lr0Transition{state: st.id, sym: sym}] = id
		}
	}

	return a
}

// closure repeatedly adds B -> .γ for every item with the dot before a
// nonterminal B. The item count is bounded by the total production
// length, so the expansion terminates.
func (a *lr0Automaton) closure(g *Grammar, kernel []lr0Item) []lr0Item {
	items := append([]lr0Item{}, kernel...)
	known := map[lr0Item]struct{}{}
	for _, item := range items {
		known[item] = struct{}{}
	}
	for i := 0; i < len(items); i++ {
		sym, ok := items[i].dottedSymbol()
		if !ok || !sym.IsNonTerminal() {
			continue
		}
		for _, prod := range g.ProductionsOf(sym) {
			item := lr0Item{prod: prod}
			if _, seen := known[item]; seen {
				continue
			}
			known[item] = struct{}{}
			items = append(items, item)
		}
	}
	a.sortItems(items)
	return items
}

func (a *lr0Automaton) sortItems(items []lr0Item) {
	sort.Slice(items, func(i, j int) bool {
		pi := a.prodIndex[items[i].prod]
		pj := a.prodIndex[items[j].prod]
		if pi != pj {
			return pi < pj
		}
		return items[i].dot < items[j].dot
	})
}

// stateKey is the canonical fingerprint of a closed, sorted item set.
// Two states get the same key exactly when their item sets are
// structurally equal.
func (a *lr0Automaton) stateKey(items []lr0Item) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v.%v", a.prodIndex[item.prod], item.dot)
	}
	return b.String()
}

func dottedSymbols(items []lr0Item) []Symbol {
	set := NewSymbolSet()
	for _, item := range items {
		if sym, ok := item.dottedSymbol(); ok {
			set.add(sym)
		}
	}
	return set.Sorted()
}
