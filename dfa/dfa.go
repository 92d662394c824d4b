// Package dfa finds equivalent state pairs of deterministic finite
// automata by pair marking (Kozen 1997, lecture 14).
package dfa

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DFA is a complete deterministic automaton over states 0..NumStates-1.
// Transitions[s][k] is the successor of state s on the k-th alphabet
// symbol.
type DFA struct {
	NumStates   int
	Alphabet    []string
	FinalStates map[int]struct{}
	Transitions [][]int
}

// ParseCases reads the case-led textual format: a case count, then per
// case a state count, the alphabet symbols, the final states, and one
// transition row per state ("state t1 t2 ..."), rows in any state order.
func ParseCases(lines []string) ([]*DFA, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, fmt.Errorf("the first line must declare the number of cases: %q", lines[0])
	}

	dfas := make([]*DFA, 0, count)
	at := 1
	for i := 0; i < count; i++ {
		d, next, err := parseCase(lines, at)
		if err != nil {
			return nil, fmt.Errorf("case %v: %w", i+1, err)
		}
		dfas = append(dfas, d)
		at = next
	}
	return dfas, nil
}

func parseCase(lines []string, at int) (*DFA, int, error) {
	if at >= len(lines) {
		return nil, 0, fmt.Errorf("missing state count")
	}
	numStates, err := strconv.Atoi(strings.TrimSpace(lines[at]))
	if err != nil || numStates <= 0 {
		return nil, 0, fmt.Errorf("bad state count: %q", lines[at])
	}
	at++

	if at >= len(lines) {
		return nil, 0, fmt.Errorf("missing alphabet")
	}
	alphabet := strings.Fields(lines[at])
	if len(alphabet) == 0 {
		return nil, 0, fmt.Errorf("empty alphabet")
	}
	at++

	if at >= len(lines) {
		return nil, 0, fmt.Errorf("missing final states")
	}
	finals := map[int]struct{}{}
	for _, f := range strings.Fields(lines[at]) {
		s, err := strconv.Atoi(f)
		if err != nil || s < 0 || s >= numStates {
			return nil, 0, fmt.Errorf("bad final state: %q", f)
		}
		finals[s] = struct{}{}
	}
	at++

	if at+numStates > len(lines) {
		return nil, 0, fmt.Errorf("expected %v transition rows", numStates)
	}
	transitions := make([][]int, numStates)
	for i := 0; i < numStates; i++ {
		fields := strings.Fields(lines[at+i])
		if len(fields) != len(alphabet)+1 {
			return nil, 0, fmt.Errorf("a transition row needs the state and %v successors: %q", len(alphabet), lines[at+i])
		}
		row := make([]int, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v >= numStates {
				return nil, 0, fmt.Errorf("bad state number in transition row: %q", f)
			}
			row[j] = v
		}
		if transitions[row[0]] != nil {
			return nil, 0, fmt.Errorf("duplicate transition row for state %v", row[0])
		}
		transitions[row[0]] = row[1:]
	}
	for s, row := range transitions {
		if row == nil {
			return nil, 0, fmt.Errorf("missing transition row for state %v", s)
		}
	}
	at += numStates

	return &DFA{
		NumStates:   numStates,
		Alphabet:    alphabet,
		FinalStates: finals,
		Transitions: transitions,
	}, at, nil
}

func (d *DFA) isFinal(s int) bool {
	_, ok := d.FinalStates[s]
	return ok
}

// reachable returns the states reachable from state 0, sorted.
func (d *DFA) reachable() []int {
	visited := map[int]struct{}{}
	queue := []int{0}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if _, ok := visited[s]; ok {
			continue
		}
		visited[s] = struct{}{}
		for k := range d.Alphabet {
			next := d.Transitions[s][k]
			if _, ok := visited[next]; !ok {
				queue = append(queue, next)
			}
		}
	}

	states := make([]int, 0, len(visited))
	for s := range visited {
		states = append(states, s)
	}
	sort.Ints(states)
	return states
}

func canonicalPair(a, b int) [2]int {
	if a <= b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// EquivalentPairs returns every pair (p, q) with p < q of reachable,
// behaviorally equivalent states, in lexicographic order. A pair is
// marked when exactly one member is final, then marking propagates
// backwards along transitions until a fixed point.
func (d *DFA) EquivalentPairs() [][2]int {
	reachable := d.reachable()

	var pairs [][2]int
	for i, p := range reachable {
		for _, q := range reachable[i+1:] {
			pairs = append(pairs, [2]int{p, q})
		}
	}

	marked := map[[2]int]struct{}{}
	for _, pr := range pairs {
		if d.isFinal(pr[0]) != d.isFinal(pr[1]) {
			marked[pr] = struct{}{}
		}
	}

	for {
		changed := false
		for _, pr := range pairs {
			if _, ok := marked[pr]; ok {
				continue
			}
			for k := range d.Alphabet {
				next := canonicalPair(d.Transitions[pr[0]][k], d.Transitions[pr[1]][k])
				if next[0] == next[1] {
					continue
				}
				if _, ok := marked[next]; ok {
					marked[pr] = struct{}{}
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	var equivalent [][2]int
	for _, pr := range pairs {
		if _, ok := marked[pr]; !ok {
			equivalent = append(equivalent, pr)
		}
	}
	return equivalent
}

// FormatPairs renders pairs as "(p, q) (r, s)".
func FormatPairs(pairs [][2]int) string {
	parts := make([]string, 0, len(pairs))
	for _, pr := range pairs {
		parts = append(parts, fmt.Sprintf("(%v, %v)", pr[0], pr[1]))
	}
	return strings.Join(parts, " ")
}
