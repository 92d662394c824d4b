package grammar

import (
	"fmt"
	"strings"
)

// Production is one rule A -> α. The RHS is never empty: the empty
// alternative is spelled as the single Epsilon symbol.
type Production struct {
	LHS Symbol
	RHS []Symbol
}

func (p *Production) Equal(q *Production) bool {
	if p.LHS != q.LHS || len(p.RHS) != len(q.RHS) {
		return false
	}
	for i, sym := range p.RHS {
		if q.RHS[i] != sym {
			return false
		}
	}
	return true
}

// IsEpsilon reports whether this is the empty alternative A -> e.
func (p *Production) IsEpsilon() bool {
	return len(p.RHS) == 1 && p.RHS[0] == Epsilon
}

// rhsLen is the effective right-hand side length: 0 for the epsilon
// production, so LR(0) items and reduce pops treat it as empty.
func (p *Production) rhsLen() int {
	if p.IsEpsilon() {
		return 0
	}
	return len(p.RHS)
}

func (p *Production) rhsText() string {
	if p.IsEpsilon() {
		return "e"
	}
	var b strings.Builder
	for _, sym := range p.RHS {
		b.WriteString(sym.String())
	}
	return b.String()
}

func (p *Production) String() string {
	return fmt.Sprintf("%v -> %v", p.LHS, p.rhsText())
}
