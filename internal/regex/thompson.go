package regex

import "automata/internal/fsa"

// Epsilon is the symbol automata built from parse trees use for their
// epsilon transitions. The literal token class excludes it, so it can
// never collide with a pattern's alphabet.
const Epsilon rune = 'ε'

// fragment is one built subtree: its initial state and its single
// final state. Every construction step keeps the final state unique.
type fragment struct {
	initial, final int
}

// builder threads the next fresh state id through construction, so
// every subtree occupies a contiguous block of ids in build order.
type builder struct {
	next        int
	states      fsa.Set[int]
	alphabet    fsa.Set[rune]
	transitions map[fsa.Pair[int, rune]]fsa.Set[int]
}

func (b *builder) state() int {
	id := b.next
	b.next++
	b.states.Add(id)
	return id
}

func (b *builder) edge(from int, sym rune, to int) {
	key := fsa.Pair[int, rune]{State: from, Symbol: sym}
	if _, ok := b.transitions[key]; !ok {
		b.transitions[key] = fsa.NewSet[int]()
	}
	b.transitions[key].Add(to)
}

func (b *builder) build(n Node) fragment {
	switch t := n.(type) {
	case Literal:
		initial := b.state()
		final := b.state()
		b.alphabet.Add(t.Sym)
		b.edge(initial, t.Sym, final)
		return fragment{initial: initial, final: final}

	case Empty:
		initial := b.state()
		final := b.state()
		b.edge(initial, Epsilon, final)
		return fragment{initial: initial, final: final}

	case Concat:
		first := b.build(t.A)
		second := b.build(t.B)
		b.edge(first.final, Epsilon, second.initial)
		return fragment{initial: first.initial, final: second.final}

	case Alternate:
		initial := b.state()
		left := b.build(t.A)
		right := b.build(t.B)
		final := b.state()
		b.edge(initial, Epsilon, left.initial)
		b.edge(initial, Epsilon, right.initial)
		b.edge(left.final, Epsilon, final)
		b.edge(right.final, Epsilon, final)
		return fragment{initial: initial, final: final}

	case Star:
		initial := b.state()
		inner := b.build(t.A)
		final := b.state()
		b.edge(initial, Epsilon, inner.initial)
		b.edge(inner.final, Epsilon, final)
		b.edge(inner.final, Epsilon, inner.initial)
		b.edge(initial, Epsilon, final)
		return fragment{initial: initial, final: final}
	}
	panic("regex: unknown node")
}

// ToNFA builds the Thompson automaton of a parse tree. States are ints
// numbered from zero in construction order and exactly one state is
// final.
func ToNFA(n Node) *fsa.NFA[rune, int] {
	b := &builder{
		states:      fsa.NewSet[int](),
		alphabet:    fsa.NewSet[rune](),
		transitions: make(map[fsa.Pair[int, rune]]fsa.Set[int]),
	}
	frag := b.build(n)
	return &fsa.NFA[rune, int]{
		States:      b.states,
		Alphabet:    b.alphabet,
		Initial:     frag.initial,
		Final:       fsa.NewSet(frag.final),
		Epsilon:     Epsilon,
		Transitions: b.transitions,
	}
}
