package fsa

// DFATransducer walks a DFA one symbol at a time and emits the output
// mapped to each state it enters. The underlying automaton is never
// modified.
type DFATransducer[T, S, V comparable] struct {
	dfa     *DFA[T, S]
	outputs map[S]V
	cursor  S
	dead    bool
}

// NewDFATransducer returns a transducer over d starting at the initial
// state. outputs maps states to the values emitted on entering them;
// states missing from the map emit nothing.
func NewDFATransducer[T, S, V comparable](d *DFA[T, S], outputs map[S]V) *DFATransducer[T, S, V] {
	return &DFATransducer[T, S, V]{dfa: d, outputs: outputs, cursor: d.Initial}
}

// Transducer returns a transducer whose output for every state is
// whether that state is final.
func (d *DFA[T, S]) Transducer() *DFATransducer[T, S, bool] {
	outputs := make(map[S]bool, d.States.Len())
	for s := range d.States {
		outputs[s] = d.Final.Has(s)
	}
	return NewDFATransducer(d, outputs)
}

// Push advances the cursor by one input symbol and returns the output
// mapped to the new state. A symbol with no defined transition kills
// the transducer: every later Push reports no output.
func (t *DFATransducer[T, S, V]) Push(symbol T) (V, bool) {
	var zero V
	if t.dead {
		return zero, false
	}
	next, ok := t.dfa.Step(t.cursor, symbol)
	if !ok {
		t.dead = true
		return zero, false
	}
	t.cursor = next
	return t.Output()
}

// Output returns the output mapped to the state under the cursor.
func (t *DFATransducer[T, S, V]) Output() (V, bool) {
	var zero V
	if t.dead {
		return zero, false
	}
	v, ok := t.outputs[t.cursor]
	if !ok {
		return zero, false
	}
	return v, true
}

// Current returns the state under the cursor. It reports false once
// the transducer is dead.
func (t *DFATransducer[T, S, V]) Current() (S, bool) {
	var zero S
	if t.dead {
		return zero, false
	}
	return t.cursor, true
}

// IsAccepting reports whether the input pushed so far is accepted.
func (t *DFATransducer[T, S, V]) IsAccepting() bool {
	return !t.dead && t.dfa.Final.Has(t.cursor)
}

// Reset rewinds the transducer to the initial state.
func (t *DFATransducer[T, S, V]) Reset() {
	t.cursor = t.dfa.Initial
	t.dead = false
}

// NFATransducer walks an NFA one symbol at a time, tracking the set of
// states the input could have reached. Epsilon transitions are folded
// away when the transducer is built, so the cursor is always closed.
type NFATransducer[T, S, V comparable] struct {
	nfa     *NFA[T, S]
	flat    map[Pair[S, T]]Set[S]
	outputs map[S]V
	cursor  Set[S]
}

// NewNFATransducer returns a transducer over n starting at the closure
// of the initial state. outputs maps states to the values emitted on
// entering them; states missing from the map emit nothing.
func NewNFATransducer[T, S, V comparable](n *NFA[T, S], outputs map[S]V) *NFATransducer[T, S, V] {
	return &NFATransducer[T, S, V]{
		nfa:     n,
		flat:    cullFlat(n.Initial, n.flatTransitions()),
		outputs: outputs,
		cursor:  n.Closure(n.Initial),
	}
}

// Transducer returns a transducer whose output for every state is
// whether acceptance is reachable from it by epsilon transitions
// alone.
func (n *NFA[T, S]) Transducer() *NFATransducer[T, S, bool] {
	outputs := make(map[S]bool, n.States.Len())
	for s := range n.States {
		outputs[s] = n.Closure(s).Intersects(n.Final)
	}
	return NewNFATransducer(n, outputs)
}

// Push advances the cursor by one input symbol and returns the outputs
// mapped to the states now under the cursor. Once the cursor empties
// it stays empty, and every later Push returns the empty set.
func (t *NFATransducer[T, S, V]) Push(symbol T) Set[V] {
	next := NewSet[S]()
	for s := range t.cursor {
		next.AddAll(t.flat[Pair[S, T]{State: s, Symbol: symbol}])
	}
	t.cursor = next
	return t.Outputs()
}

// Outputs returns the outputs mapped to the states under the cursor.
func (t *NFATransducer[T, S, V]) Outputs() Set[V] {
	out := NewSet[V]()
	for s := range t.cursor {
		if v, ok := t.outputs[s]; ok {
			out.Add(v)
		}
	}
	return out
}

// Current returns a copy of the state set under the cursor.
func (t *NFATransducer[T, S, V]) Current() Set[S] {
	return t.cursor.Clone()
}

// IsAccepting reports whether the input pushed so far is accepted.
func (t *NFATransducer[T, S, V]) IsAccepting() bool {
	return t.cursor.Intersects(t.nfa.Final)
}

// Reset rewinds the transducer to the closure of the initial state.
func (t *NFATransducer[T, S, V]) Reset() {
	t.cursor = t.nfa.Closure(t.nfa.Initial)
}
