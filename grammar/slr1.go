package grammar

import "fmt"

type ConflictKind int

const (
	ConflictShiftShift ConflictKind = iota
	ConflictShiftReduce
	ConflictReduceReduce
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictShiftShift:
		return "shift/shift"
	case ConflictShiftReduce:
		return "shift/reduce"
	case ConflictReduceReduce:
		return "reduce/reduce"
	}
	return "unknown"
}

// NotSLR1Error reports an ACTION-table collision. Prod1 and Prod2 carry
// the reduce productions involved; a nil production stands for the shift
// side of a shift/reduce conflict. Like NotLL1Error it is an expected,
// routine outcome.
type NotSLR1Error struct {
	State  int
	Symbol Symbol
	Kind   ConflictKind
	Prod1  *Production
	Prod2  *Production
}

func (e *NotSLR1Error) Error() string {
	return fmt.Sprintf("not SLR(1): %v conflict at state %v on %v", e.Kind, e.State, e.Symbol)
}

type actionType int

const (
	actionShift actionType = iota
	actionReduce
	actionAccept
)

type action struct {
	typ   actionType
	state int
	prod  *Production
}

func (a action) String() string {
	switch a.typ {
	case actionShift:
		return fmt.Sprintf("shift %v", a.state)
	case actionReduce:
		return fmt.Sprintf("reduce %v", a.prod)
	}
	return "accept"
}

type slrKey struct {
	state int
	sym   Symbol
}

// SLR1Tables are the ACTION and GOTO tables driving the shift-reduce
// parser, built over the LR(0) automaton with FOLLOW lookahead.
type SLR1Tables struct {
	grammar   *Grammar
	automaton *lr0Automaton
	actions   map[slrKey]action
	gotos     map[slrKey]int
}

// BuildSLR1Tables constructs the LR(0) automaton and fills ACTION/GOTO.
// Within a state, every shift and goto transition is written before any
// reduce entry, and symbols and items are visited in sorted order, so a
// rebuild reports the identical conflict. The first collision aborts
// construction.
func BuildSLR1Tables(g *Grammar, follow FollowMap) (*SLR1Tables, error) {
	a := genLR0Automaton(g)
	t := &SLR1Tables{
		grammar:   g,
		automaton: a,
		actions:   map[slrKey]action{},
		gotos:     map[slrKey]int{},
	}

	for _, st := range a.states {
		for _, sym := range dottedSymbols(st.items) {
			next := a.gotos[lr0Transition{state: st.id, sym: sym}]
			if sym.IsNonTerminal() {
				t.gotos[slrKey{state: st.id, sym: sym}] = next
				continue
			}
			if err := t.writeShift(st.id, sym, next); err != nil {
				return nil, err
			}
		}

		for _, item := range st.items {
			if !item.reducible() {
				continue
			}
			if item.prod.LHS == augmentedStart {
				t.actions[slrKey{state: st.id, sym: EndMarker}] = action{typ: actionAccept}
				continue
			}
			for _, sym := range follow[item.prod.LHS].Sorted() {
				if err := t.writeReduce(st.id, sym, item.prod); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

func (t *SLR1Tables) writeShift(state int, sym Symbol, next int) error {
	key := slrKey{state: state, sym: sym}
	if existing, ok := t.actions[key]; ok {
		// A shift/shift collision cannot come from the transition
		// function, which records one target per symbol; the check stays
		// so a malformed automaton surfaces instead of being overwritten.
		kind := ConflictShiftShift
		var prod *Production
		if existing.typ == actionReduce {
			kind = ConflictShiftReduce
			prod = existing.prod
		}
		return &NotSLR1Error{
			State:  state,
			Symbol: sym,
			Kind:   kind,
			Prod1:  prod,
		}
	}
	t.actions[key] = action{typ: actionShift, state: next}
	return nil
}

func (t *SLR1Tables) writeReduce(state int, sym Symbol, prod *Production) error {
	key := slrKey{state: state, sym: sym}
	existing, ok := t.actions[key]
	if !ok {
		t.actions[key] = action{typ: actionReduce, prod: prod}
		return nil
	}
	switch existing.typ {
	case actionShift:
		return &NotSLR1Error{
			State:  state,
			Symbol: sym,
			Kind:   ConflictShiftReduce,
			Prod1:  prod,
		}
	case actionAccept:
		return &NotSLR1Error{
			State:  state,
			Symbol: sym,
			Kind:   ConflictReduceReduce,
			Prod1:  t.automaton.augProd,
			Prod2:  prod,
		}
	}
	if existing.prod.Equal(prod) {
		return nil
	}
	return &NotSLR1Error{
		State:  state,
		Symbol: sym,
		Kind:   ConflictReduceReduce,
		Prod1:  existing.prod,
		Prod2:  prod,
	}
}

// StateCount returns the number of LR(0) states behind the tables.
func (t *SLR1Tables) StateCount() int {
	return len(t.automaton.states)
}

// Parse runs the shift-reduce machine and reports whether the input
// belongs to the grammar's language.
func (t *SLR1Tables) Parse(input string) bool {
	in := symbolsOf(input)
	in = append(in, EndMarker)

	stateStack := []int{0}
	var symbolStack []Symbol
	idx := 0

	for {
		if idx >= len(in) {
			return false
		}
		act, ok := t.actions[slrKey{state: stateStack[len(stateStack)-1], sym: in[idx]}]
		if !ok {
			return false
		}

		switch act.typ {
		case actionAccept:
			return true
		case actionShift:
			symbolStack = append(symbolStack, in[idx])
			stateStack = append(stateStack, act.state)
			idx++
		case actionReduce:
			n := act.prod.rhsLen()
			if n >= len(stateStack) || n > len(symbolStack) {
				return false
			}
			symbolStack = symbolStack[:len(symbolStack)-n]
			stateStack = stateStack[:len(stateStack)-n]

			next, ok := t.gotos[slrKey{state: stateStack[len(stateStack)-1], sym: act.prod.LHS}]
			if !ok {
				// A complete table always has this entry; reject instead
				// of panicking on a hole.
				return false
			}
			symbolStack = append(symbolStack, act.prod.LHS)
			stateStack = append(stateStack, next)
		}
	}
}
