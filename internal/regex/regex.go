// Package regex parses regular expressions and derives finite automata
// from them. Union '|' binds loosest, then concatenation by adjacency,
// then the '*' suffix; atoms are the literals [0-9A-Za-z], the epsilon
// atom 'ε' and parenthesized groups.
package regex

import (
	"errors"

	"automata/internal/fsa"
)

// Regex bundles a pattern with every machine derived from it. All
// derivations happen at compile time, so the getters are cheap and a
// compiled Regex is safe for concurrent readers.
type Regex struct {
	pattern string
	tree    Node
	nfa     *fsa.NFA[rune, int]
	rawDFA  *fsa.DFA[rune, string]
	dfa     *fsa.DFA[rune, string]
}

// Compile parses the pattern and derives its automata: the Thompson
// NFA, the determinized DFA and the minimal DFA.
func Compile(pattern string) (*Regex, error) {
	if pattern == "" {
		return nil, &ParseError{Pattern: pattern, Err: errors.New("empty pattern")}
	}
	tree, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	nfa := ToNFA(tree)
	raw := nfa.ToDFA()
	return &Regex{
		pattern: pattern,
		tree:    tree,
		nfa:     nfa,
		rawDFA:  raw,
		dfa:     fsa.Minimize(raw),
	}, nil
}

// MustCompile is Compile for patterns known to be valid; it panics on
// error.
func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the source pattern.
func (r *Regex) String() string { return r.pattern }

// Tree returns the parse tree.
func (r *Regex) Tree() Node { return r.tree }

// NFA returns the Thompson automaton.
func (r *Regex) NFA() *fsa.NFA[rune, int] { return r.nfa }

// RawDFA returns the determinized automaton before minimization.
func (r *Regex) RawDFA() *fsa.DFA[rune, string] { return r.rawDFA }

// DFA returns the minimal deterministic automaton.
func (r *Regex) DFA() *fsa.DFA[rune, string] { return r.dfa }

// MatchString reports whether the pattern matches the whole input.
func (r *Regex) MatchString(s string) bool {
	return r.dfa.Accepts([]rune(s))
}
