package fsa

// NFA is a nondeterministic finite automaton over symbols T and states
// S. Epsilon is the sentinel marking non-consuming transitions; it is
// excluded from the alphabet. Transitions form a multi-valued partial
// function: a missing entry is an empty target set, not an error.
type NFA[T, S comparable] struct {
	States      Set[S]
	Alphabet    Set[T]
	Initial     S
	Final       Set[S]
	Epsilon     T
	Transitions map[Pair[S, T]]Set[S]
}

// NewNFA validates the definition and returns the automaton. A
// violated structural invariant is reported as an *InvariantError.
func NewNFA[T, S comparable](
	states Set[S],
	alphabet Set[T],
	initial S,
	transitions map[Pair[S, T]]Set[S],
	final Set[S],
	epsilon T,
) (*NFA[T, S], error) {
	if !states.Has(initial) {
		return nil, invariantf("initial state %q not among states", text(initial))
	}
	for f := range final {
		if !states.Has(f) {
			return nil, invariantf("final state %q not among states", text(f))
		}
	}
	if alphabet.Has(epsilon) {
		return nil, invariantf("epsilon %q must not be in the alphabet", text(epsilon))
	}
	for key, targets := range transitions {
		if !states.Has(key.State) {
			return nil, invariantf("transition source %q not among states", text(key.State))
		}
		if key.Symbol != epsilon && !alphabet.Has(key.Symbol) {
			return nil, invariantf("transition symbol %q not in the alphabet", text(key.Symbol))
		}
		for t := range targets {
			if !states.Has(t) {
				return nil, invariantf("transition target %q not among states", text(t))
			}
		}
	}
	return &NFA[T, S]{
		States:      states,
		Alphabet:    alphabet,
		Initial:     initial,
		Final:       final,
		Epsilon:     epsilon,
		Transitions: transitions,
	}, nil
}

// Accepts reports whether the automaton accepts the input sequence.
// The cursor starts at the closure of the initial state; each symbol
// moves it to the closure of the union of member targets. Acceptance
// means the surviving cursor intersects the final set. The epsilon
// sentinel is not an input symbol; a word containing it is rejected.
func (n *NFA[T, S]) Accepts(input []T) bool {
	current := n.Closure(n.Initial)
	for _, sym := range input {
		if sym == n.Epsilon {
			return false
		}
		next := NewSet[S]()
		for s := range current {
			next.AddAll(n.Transitions[Pair[S, T]{State: s, Symbol: sym}])
		}
		if next.Len() == 0 {
			return false
		}
		current = n.ClosureSet(next)
	}
	return current.Intersects(n.Final)
}

// Squash renders every state and symbol as text, producing the
// [string, string] automaton consumed by the rendering and persistence
// boundary. Composite states keep their canonical set names; runes
// render as themselves.
func (n *NFA[T, S]) Squash() *NFA[string, string] {
	states := make(Set[string], len(n.States))
	for s := range n.States {
		states.Add(text(s))
	}
	alphabet := make(Set[string], len(n.Alphabet))
	for a := range n.Alphabet {
		alphabet.Add(text(a))
	}
	final := make(Set[string], len(n.Final))
	for f := range n.Final {
		final.Add(text(f))
	}
	transitions := make(map[Pair[string, string]]Set[string], len(n.Transitions))
	for key, targets := range n.Transitions {
		squashed := make(Set[string], len(targets))
		for t := range targets {
			squashed.Add(text(t))
		}
		transitions[Pair[string, string]{State: text(key.State), Symbol: text(key.Symbol)}] = squashed
	}
	return &NFA[string, string]{
		States:      states,
		Alphabet:    alphabet,
		Initial:     text(n.Initial),
		Final:       final,
		Epsilon:     text(n.Epsilon),
		Transitions: transitions,
	}
}
