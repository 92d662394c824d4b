package grammar

import (
	"sort"
	"testing"
)

func genGrammar(t *testing.T, lines ...string) *Grammar {
	t.Helper()

	g, err := FromLines(lines)
	if err != nil {
		t.Fatalf("failed to build a grammar: %v", err)
	}
	return g
}

func genSymbolSet(text string) SymbolSet {
	return NewSymbolSet(symbolsOf(text)...)
}

func testSymbolSet(t *testing.T, got SymbolSet, want SymbolSet) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("unexpected set; want: %v, got: %v", want.Sorted(), got.Sorted())
	}
	for sym := range want {
		if !got.Has(sym) {
			t.Fatalf("a symbol is missing from the set; want: %v, got: %v", want.Sorted(), got.Sorted())
		}
	}
}

// deriveSentences enumerates every terminal string the grammar derives
// whose sentential forms stay within maxLen symbols, by breadth-first
// expansion of the leftmost nonterminal. The length bound and a seen set
// keep the search finite.
func deriveSentences(g *Grammar, maxLen int) []string {
	type form []Symbol

	formKey := func(f form) string {
		var b []byte
		for _, sym := range f {
			b = append(b, byte(sym.Kind), sym.Char)
		}
		return string(b)
	}

	seen := map[string]struct{}{}
	sentences := map[string]struct{}{}
	queue := []form{{g.Start}}
	seen[formKey(queue[0])] = struct{}{}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		leftmost := -1
		for i, sym := range f {
			if sym.IsNonTerminal() {
				leftmost = i
				break
			}
		}

		if leftmost < 0 {
			var b []byte
			for _, sym := range f {
				b = append(b, sym.Char)
			}
			sentences[string(b)] = struct{}{}
			continue
		}

		for _, prod := range g.ProductionsOf(f[leftmost]) {
			var next form
			next = append(next, f[:leftmost]...)
			if !prod.IsEpsilon() {
				next = append(next, prod.RHS...)
			}
			next = append(next, f[leftmost+1:]...)

			if len(next) > maxLen {
				continue
			}
			key := formKey(next)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			queue = append(queue, next)
		}
	}

	result := make([]string, 0, len(sentences))
	for s := range sentences {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}
