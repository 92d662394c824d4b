package grammar

import "sort"

type SymbolKind int

const (
	SymbolEpsilon SymbolKind = iota
	SymbolTerminal
	SymbolNonTerminal
	SymbolEndMarker
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolEpsilon:
		return "epsilon"
	case SymbolTerminal:
		return "terminal"
	case SymbolNonTerminal:
		return "non-terminal"
	case SymbolEndMarker:
		return "end-marker"
	}
	return "unknown"
}

// Symbol is a single grammar symbol. Two symbols are equal when both the
// kind and the character match, so Symbol values work directly as map keys.
type Symbol struct {
	Kind SymbolKind
	Char byte
}

var (
	Epsilon   = Symbol{Kind: SymbolEpsilon, Char: 'e'}
	EndMarker = Symbol{Kind: SymbolEndMarker, Char: '$'}

	// augmentedStart is the synthetic start symbol of the LR(0) automaton.
	// ClassifySymbol never produces the quote character as a nonterminal,
	// so it cannot collide with a user-written symbol.
	augmentedStart = Symbol{Kind: SymbolNonTerminal, Char: '\''}
)

// ClassifySymbol maps a character to its symbol following the textual
// grammar convention: `e` is epsilon, `$` is the end marker, uppercase
// letters are nonterminals, and every other character is a terminal.
func ClassifySymbol(c byte) Symbol {
	switch {
	case c == 'e':
		return Epsilon
	case c == '$':
		return EndMarker
	case c >= 'A' && c <= 'Z':
		return Symbol{Kind: SymbolNonTerminal, Char: c}
	default:
		return Symbol{Kind: SymbolTerminal, Char: c}
	}
}

func symbolsOf(text string) []Symbol {
	syms := make([]Symbol, 0, len(text))
	for i := 0; i < len(text); i++ {
		syms = append(syms, ClassifySymbol(text[i]))
	}
	return syms
}

func (s Symbol) IsTerminal() bool {
	return s.Kind == SymbolTerminal
}

func (s Symbol) IsNonTerminal() bool {
	return s.Kind == SymbolNonTerminal
}

// Less orders symbols as Epsilon < terminals < nonterminals < EndMarker,
// then by character. The order only makes printed tables and conflict
// reports reproducible; no algorithm depends on it for correctness.
func (s Symbol) Less(t Symbol) bool {
	if s.Kind != t.Kind {
		return s.Kind < t.Kind
	}
	return s.Char < t.Char
}

func (s Symbol) String() string {
	switch s.Kind {
	case SymbolEpsilon:
		return "e"
	case SymbolEndMarker:
		return "$"
	}
	return string(s.Char)
}

type SymbolSet map[Symbol]struct{}

func NewSymbolSet(syms ...Symbol) SymbolSet {
	set := SymbolSet{}
	for _, sym := range syms {
		set[sym] = struct{}{}
	}
	return set
}

func (s SymbolSet) Has(sym Symbol) bool {
	_, ok := s[sym]
	return ok
}

func (s SymbolSet) add(sym Symbol) bool {
	if _, ok := s[sym]; ok {
		return false
	}
	s[sym] = struct{}{}
	return true
}

// Sorted returns the members in the Symbol total order.
func (s SymbolSet) Sorted() []Symbol {
	syms := make([]Symbol, 0, len(s))
	for sym := range s {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Less(syms[j])
	})
	return syms
}
