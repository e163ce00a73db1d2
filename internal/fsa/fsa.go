// Package fsa implements finite automata: nondeterministic and
// deterministic machines, epsilon-closure subset construction, DFA
// minimization, regular-expression synthesis by state elimination,
// DFA set operations, and incremental transducers.
//
// Automata are value objects. Every derivation (ToDFA, Minimize,
// WithoutEpsilon, the set operations) allocates a fresh state space
// and never mutates its input, so independently derived machines share
// nothing and are safe for concurrent readers. Transducers carry a
// mutable cursor and are not safe for concurrent use.
package fsa

import (
	"fmt"
	"sort"
	"strings"
)

// Pair keys one transition-table entry.
type Pair[S, T comparable] struct {
	State  S
	Symbol T
}

// text renders a symbol or state for names, edge labels and sort
// order. Runes render as themselves rather than as code points.
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case rune:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// sortedTexts renders every element of a set and sorts the renderings.
func sortedTexts[E comparable](s Set[E]) []string {
	out := make([]string, 0, len(s))
	for e := range s {
		out = append(out, text(e))
	}
	sort.Strings(out)
	return out
}

// sortedByText orders a set's elements by their rendering, giving the
// deterministic iteration order used by minimization and synthesis.
func sortedByText[E comparable](s Set[E]) []E {
	out := make([]E, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return text(out[i]) < text(out[j]) })
	return out
}

// setName is the canonical rendering of a composite state: member
// renderings sorted, space-joined, brace-wrapped. Derivations use it
// to keep set-valued states as comparable map keys.
func setName[E comparable](s Set[E]) string {
	return "{" + strings.Join(sortedTexts(s), " ") + "}"
}
