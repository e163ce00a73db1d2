package fsa

// Closure returns the set of states reachable from s using only
// epsilon transitions, including s itself.
func (n *NFA[T, S]) Closure(s S) Set[S] {
	return n.ClosureSet(NewSet(s))
}

// ClosureSet returns the epsilon closure of a state set: the smallest
// superset closed under epsilon edges, computed breadth-first.
// Closure is idempotent: ClosureSet(ClosureSet(x)) equals
// ClosureSet(x).
func (n *NFA[T, S]) ClosureSet(states Set[S]) Set[S] {
	closure := states.Clone()
	queue := make([]S, 0, len(states))
	for s := range states {
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for t := range n.Transitions[Pair[S, T]{State: cur, Symbol: n.Epsilon}] {
			if !closure.Has(t) {
				closure.Add(t)
				queue = append(queue, t)
			}
		}
	}
	return closure
}

// flatTransitions builds the epsilon-free transition table: for every
// state q and alphabet symbol a, the target is the closure of the
// union, over members s of closure(q), of transitions(s, a). Entries
// with empty targets are omitted.
func (n *NFA[T, S]) flatTransitions() map[Pair[S, T]]Set[S] {
	closures := make(map[S]Set[S], len(n.States))
	for s := range n.States {
		closures[s] = n.Closure(s)
	}
	flat := make(map[Pair[S, T]]Set[S])
	for q := range n.States {
		for a := range n.Alphabet {
			targets := NewSet[S]()
			for s := range closures[q] {
				targets.AddAll(n.Transitions[Pair[S, T]{State: s, Symbol: a}])
			}
			if targets.Len() == 0 {
				continue
			}
			flat[Pair[S, T]{State: q, Symbol: a}] = n.ClosureSet(targets)
		}
	}
	return flat
}

// cullFlat drops flat-table entries whose source state cannot be
// reached from the initial state through the flat table itself.
func cullFlat[T, S comparable](initial S, flat map[Pair[S, T]]Set[S]) map[Pair[S, T]]Set[S] {
	outgoing := make(map[S][]Set[S], len(flat))
	for key, targets := range flat {
		outgoing[key.State] = append(outgoing[key.State], targets)
	}
	reachable := NewSet(initial)
	queue := []S{initial}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, targets := range outgoing[cur] {
			for t := range targets {
				if !reachable.Has(t) {
					reachable.Add(t)
					queue = append(queue, t)
				}
			}
		}
	}
	culled := make(map[Pair[S, T]]Set[S], len(flat))
	for key, targets := range flat {
		if reachable.Has(key.State) {
			culled[key] = targets
		}
	}
	return culled
}
