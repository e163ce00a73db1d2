package fsa

// ToDFA derives the equivalent deterministic automaton by subset
// construction. Composite states are discovered breadth-first from the
// closure of the initial state, so only reachable subsets are
// materialized. Each composite is named by setName over the member
// states; a composite is final iff it intersects the closure of the
// final set.
func (n *NFA[T, S]) ToDFA() *DFA[T, string] {
	flat := n.flatTransitions()
	acceptable := n.ClosureSet(n.Final)

	start := n.Closure(n.Initial)
	startName := setName(start)

	composites := map[string]Set[S]{startName: start}
	states := NewSet(startName)
	final := NewSet[string]()
	if start.Intersects(acceptable) {
		final.Add(startName)
	}
	transitions := make(map[Pair[string, T]]string)

	queue := []string{startName}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		members := composites[name]
		for a := range n.Alphabet {
			targets := NewSet[S]()
			for s := range members {
				targets.AddAll(flat[Pair[S, T]{State: s, Symbol: a}])
			}
			if targets.Len() == 0 {
				continue
			}
			targetName := setName(targets)
			if !states.Has(targetName) {
				states.Add(targetName)
				composites[targetName] = targets
				if targets.Intersects(acceptable) {
					final.Add(targetName)
				}
				queue = append(queue, targetName)
			}
			transitions[Pair[string, T]{State: name, Symbol: a}] = targetName
		}
	}

	return &DFA[T, string]{
		States:      states,
		Alphabet:    n.Alphabet.Clone(),
		Initial:     startName,
		Final:       final,
		Transitions: transitions,
	}
}

// WithoutEpsilon returns an equivalent NFA with no epsilon
// transitions. The result keeps the original state type: its states
// are the initial state plus every endpoint of the flattened table,
// and a state is final iff its closure in the receiver intersects the
// receiver's final set. Flattening preserves the accepted language,
// including acceptance of the empty word.
func (n *NFA[T, S]) WithoutEpsilon() *NFA[T, S] {
	flat := cullFlat(n.Initial, n.flatTransitions())

	states := NewSet(n.Initial)
	for key, targets := range flat {
		states.Add(key.State)
		states.AddAll(targets)
	}
	final := NewSet[S]()
	for s := range states {
		if n.Closure(s).Intersects(n.Final) {
			final.Add(s)
		}
	}

	transitions := make(map[Pair[S, T]]Set[S], len(flat))
	for key, targets := range flat {
		transitions[key] = targets.Clone()
	}

	return &NFA[T, S]{
		States:      states,
		Alphabet:    n.Alphabet.Clone(),
		Initial:     n.Initial,
		Final:       final,
		Epsilon:     n.Epsilon,
		Transitions: transitions,
	}
}
