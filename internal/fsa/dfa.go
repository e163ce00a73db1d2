package fsa

// DFA is a deterministic finite automaton. Transitions form a partial
// function: a missing entry means no transition, which rejects the
// rest of the input.
type DFA[T, S comparable] struct {
	States      Set[S]
	Alphabet    Set[T]
	Initial     S
	Final       Set[S]
	Transitions map[Pair[S, T]]S
}

// NewDFA validates the definition and returns the automaton. A
// violated structural invariant is reported as an *InvariantError.
func NewDFA[T, S comparable](
	states Set[S],
	alphabet Set[T],
	initial S,
	transitions map[Pair[S, T]]S,
	final Set[S],
) (*DFA[T, S], error) {
	if !states.Has(initial) {
		return nil, invariantf("initial state %q not among states", text(initial))
	}
	for f := range final {
		if !states.Has(f) {
			return nil, invariantf("final state %q not among states", text(f))
		}
	}
	for key, target := range transitions {
		if !states.Has(key.State) {
			return nil, invariantf("transition source %q not among states", text(key.State))
		}
		if !alphabet.Has(key.Symbol) {
			return nil, invariantf("transition symbol %q not in the alphabet", text(key.Symbol))
		}
		if !states.Has(target) {
			return nil, invariantf("transition target %q not among states", text(target))
		}
	}
	return &DFA[T, S]{
		States:      states,
		Alphabet:    alphabet,
		Initial:     initial,
		Final:       final,
		Transitions: transitions,
	}, nil
}

// Step returns the successor of state s on sym, if one is defined.
func (d *DFA[T, S]) Step(s S, sym T) (S, bool) {
	next, ok := d.Transitions[Pair[S, T]{State: s, Symbol: sym}]
	return next, ok
}

// Accepts reports whether the automaton accepts the input sequence. A
// missing transition rejects.
func (d *DFA[T, S]) Accepts(input []T) bool {
	current := d.Initial
	for _, sym := range input {
		next, ok := d.Step(current, sym)
		if !ok {
			return false
		}
		current = next
	}
	return d.Final.Has(current)
}

// Squash renders every state and symbol as text, producing the
// [string, string] automaton consumed by the rendering and persistence
// boundary.
func (d *DFA[T, S]) Squash() *DFA[string, string] {
	states := make(Set[string], len(d.States))
	for s := range d.States {
		states.Add(text(s))
	}
	alphabet := make(Set[string], len(d.Alphabet))
	for a := range d.Alphabet {
		alphabet.Add(text(a))
	}
	final := make(Set[string], len(d.Final))
	for f := range d.Final {
		final.Add(text(f))
	}
	transitions := make(map[Pair[string, string]]string, len(d.Transitions))
	for key, target := range d.Transitions {
		transitions[Pair[string, string]{State: text(key.State), Symbol: text(key.Symbol)}] = text(target)
	}
	return &DFA[string, string]{
		States:      states,
		Alphabet:    alphabet,
		Initial:     text(d.Initial),
		Final:       final,
		Transitions: transitions,
	}
}
