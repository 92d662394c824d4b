package grammar

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Deterministic, render-ready views of the analysis results. The Symbol
// total order is applied here, at the presentation boundary; the builders
// themselves never depend on it.

func symbolComparator(a, b interface{}) int {
	sa := a.(Symbol)
	sb := b.(Symbol)
	switch {
	case sa == sb:
		return 0
	case sa.Less(sb):
		return -1
	}
	return 1
}

func symbolSetText(set SymbolSet) string {
	ts := treeset.NewWith(symbolComparator)
	for sym := range set {
		ts.Add(sym)
	}
	parts := make([]string, 0, ts.Size())
	ts.Each(func(_ int, v interface{}) {
		parts = append(parts, v.(Symbol).String())
	})
	return strings.Join(parts, " ")
}

// DescribeSets returns one row per nonterminal with its FIRST and FOLLOW
// sets, header row first.
func DescribeSets(g *Grammar, first FirstMap, follow FollowMap) [][]string {
	rows := [][]string{{"Nonterminal", "FIRST", "FOLLOW"}}
	for _, nt := range g.NonTerminals() {
		rows = append(rows, []string{
			nt.String(),
			symbolSetText(first[nt]),
			symbolSetText(follow[nt]),
		})
	}
	return rows
}

// Describe returns the occupied predictive-table cells sorted by
// nonterminal and lookahead, header row first.
func (t *LL1Table) Describe() [][]string {
	ts := treeset.NewWith(func(a, b interface{}) int {
		ka := a.(ll1Key)
		kb := b.(ll1Key)
		if c := symbolComparator(ka.nonTerminal, kb.nonTerminal); c != 0 {
			return c
		}
		return symbolComparator(ka.lookahead, kb.lookahead)
	})
	for key := range t.entries {
		ts.Add(key)
	}

	rows := [][]string{{"Nonterminal", "Lookahead", "Production"}}
	ts.Each(func(_ int, v interface{}) {
		key := v.(ll1Key)
		rows = append(rows, []string{
			key.nonTerminal.String(),
			key.lookahead.String(),
			t.entries[key].String(),
		})
	})
	return rows
}

func slrKeyComparator(a, b interface{}) int {
	ka := a.(slrKey)
	kb := b.(slrKey)
	if ka.state != kb.state {
		if ka.state < kb.state {
			return -1
		}
		return 1
	}
	return symbolComparator(ka.sym, kb.sym)
}

// DescribeActions returns the ACTION table sorted by state and symbol,
// header row first.
func (t *SLR1Tables) DescribeActions() [][]string {
	ts := treeset.NewWith(slrKeyComparator)
	for key := range t.actions {
		ts.Add(key)
	}

	rows := [][]string{{"State", "Symbol", "Action"}}
	ts.Each(func(_ int, v interface{}) {
		key := v.(slrKey)
		rows = append(rows, []string{
			strconv.Itoa(key.state),
			key.sym.String(),
			t.actions[key].String(),
		})
	})
	return rows
}

// DescribeGotos returns the GOTO table sorted by state and nonterminal,
// header row first.
func (t *SLR1Tables) DescribeGotos() [][]string {
	ts := treeset.NewWith(slrKeyComparator)
	for key := range t.gotos {
		ts.Add(key)
	}

	rows := [][]string{{"State", "Nonterminal", "Next state"}}
	ts.Each(func(_ int, v interface{}) {
		key := v.(slrKey)
		rows = append(rows, []string{
			strconv.Itoa(key.state),
			key.sym.String(),
			strconv.Itoa(t.gotos[key]),
		})
	})
	return rows
}

// DescribeStates returns one row per LR(0) item, grouped by state in
// numbering order, header row first.
func (t *SLR1Tables) DescribeStates() [][]string {
	return describeStates(t.automaton)
}

// DescribeLR0States builds the LR(0) automaton for a grammar and returns
// its item sets in render-ready rows. It lets a caller inspect the
// automaton even when SLR(1) table construction fails on a conflict.
func DescribeLR0States(g *Grammar) [][]string {
	return describeStates(genLR0Automaton(g))
}

func describeStates(a *lr0Automaton) [][]string {
	rows := [][]string{{"State", "Item"}}
	for _, st := range a.states {
		for _, item := range st.items {
			rows = append(rows, []string{strconv.Itoa(st.id), item.String()})
		}
	}
	return rows
}
