package fsa

// sinkName is the base name of the absorbing state added when a DFA
// is totalized.
const sinkName = "{}"

// totalize returns an equivalent DFA over string states with a
// transition defined for every state and symbol. When the input is
// partial, undefined transitions are routed to a fresh non-final sink
// that loops to itself.
func totalize[T, S comparable](d *DFA[T, S]) *DFA[T, string] {
	states := NewSet[string]()
	for s := range d.States {
		states.Add(text(s))
	}
	sink := freshName(sinkName, states)

	final := NewSet[string]()
	for f := range d.Final {
		final.Add(text(f))
	}

	transitions := make(map[Pair[string, T]]string, states.Len()*d.Alphabet.Len())
	partial := false
	for s := range d.States {
		for a := range d.Alphabet {
			key := Pair[string, T]{State: text(s), Symbol: a}
			if t, ok := d.Transitions[Pair[S, T]{State: s, Symbol: a}]; ok {
				transitions[key] = text(t)
			} else {
				transitions[key] = sink
				partial = true
			}
		}
	}
	if partial {
		states.Add(sink)
		for a := range d.Alphabet {
			transitions[Pair[string, T]{State: sink, Symbol: a}] = sink
		}
	}

	return &DFA[T, string]{
		States:      states,
		Alphabet:    d.Alphabet.Clone(),
		Initial:     text(d.Initial),
		Final:       final,
		Transitions: transitions,
	}
}

// Complement returns a DFA accepting exactly the words over d's
// alphabet that d rejects. The automaton is totalized first so that
// words dying on an undefined transition flip to accepted.
func Complement[T, S comparable](d *DFA[T, S]) *DFA[T, string] {
	total := totalize(d)
	final := NewSet[string]()
	for s := range total.States {
		if !total.Final.Has(s) {
			final.Add(s)
		}
	}
	total.Final = final
	return total
}

// Intersect returns a DFA accepting exactly the words both a and b
// accept. The alphabets must match.
func Intersect[T, S, U comparable](a *DFA[T, S], b *DFA[T, U]) (*DFA[T, string], error) {
	return product(a, b, func(p, q bool) bool { return p && q })
}

// Union returns a DFA accepting the words accepted by a or by b. The
// alphabets must match.
func Union[T, S, U comparable](a *DFA[T, S], b *DFA[T, U]) (*DFA[T, string], error) {
	return product(a, b, func(p, q bool) bool { return p || q })
}

// product builds the pair automaton of two DFAs over the same
// alphabet. Both inputs are totalized, then pairs are discovered
// breadth-first from the two initial states; accept decides the
// finality of a pair from the finality of its halves.
func product[T, S, U comparable](a *DFA[T, S], b *DFA[T, U], accept func(bool, bool) bool) (*DFA[T, string], error) {
	if !a.Alphabet.Equal(b.Alphabet) {
		return nil, invariantf("alphabets differ")
	}
	ta := totalize(a)
	tb := totalize(b)

	type halves struct {
		left, right string
	}
	start := pairName(ta.Initial, tb.Initial)
	seen := map[string]halves{start: {left: ta.Initial, right: tb.Initial}}

	states := NewSet(start)
	final := NewSet[string]()
	if accept(ta.Final.Has(ta.Initial), tb.Final.Has(tb.Initial)) {
		final.Add(start)
	}
	transitions := make(map[Pair[string, T]]string)

	queue := []string{start}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		cur := seen[name]
		for sym := range ta.Alphabet {
			left, _ := ta.Step(cur.left, sym)
			right, _ := tb.Step(cur.right, sym)
			nextName := pairName(left, right)
			if !states.Has(nextName) {
				states.Add(nextName)
				seen[nextName] = halves{left: left, right: right}
				if accept(ta.Final.Has(left), tb.Final.Has(right)) {
					final.Add(nextName)
				}
				queue = append(queue, nextName)
			}
			transitions[Pair[string, T]{State: name, Symbol: sym}] = nextName
		}
	}

	return &DFA[T, string]{
		States:      states,
		Alphabet:    ta.Alphabet.Clone(),
		Initial:     start,
		Final:       final,
		Transitions: transitions,
	}, nil
}

func pairName(left, right string) string {
	return "(" + left + " " + right + ")"
}

// Reverse returns an NFA accepting the reversal of every word d
// accepts. Every edge is flipped, the old initial state becomes the
// only final state, and a fresh initial state reaches the old final
// states by epsilon. The caller supplies the epsilon symbol, which
// must lie outside d's alphabet.
func Reverse[T, S comparable](d *DFA[T, S], epsilon T) (*NFA[T, string], error) {
	if d.Alphabet.Has(epsilon) {
		return nil, invariantf("epsilon %q is part of the alphabet", text(epsilon))
	}

	states := NewSet[string]()
	for s := range d.States {
		states.Add(text(s))
	}
	initial := freshName("_R", states)
	states.Add(initial)

	transitions := make(map[Pair[string, T]]Set[string])
	add := func(from string, sym T, to string) {
		key := Pair[string, T]{State: from, Symbol: sym}
		if _, ok := transitions[key]; !ok {
			transitions[key] = NewSet[string]()
		}
		transitions[key].Add(to)
	}
	for key, t := range d.Transitions {
		add(text(t), key.Symbol, text(key.State))
	}
	for f := range d.Final {
		add(initial, epsilon, text(f))
	}

	return &NFA[T, string]{
		States:      states,
		Alphabet:    d.Alphabet.Clone(),
		Initial:     initial,
		Final:       NewSet(text(d.Initial)),
		Epsilon:     epsilon,
		Transitions: transitions,
	}, nil
}
