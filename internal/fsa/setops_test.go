package fsa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// endsInB accepts words over {a, b} ending in b.
func endsInB(t *testing.T) *DFA[string, string] {
	t.Helper()
	return mustDFA(t,
		NewSet("f0", "f1"),
		NewSet("a", "b"),
		"f0",
		dtrans{
			tkey("f0", "a"): "f0",
			tkey("f0", "b"): "f1",
			tkey("f1", "a"): "f0",
			tkey("f1", "b"): "f1",
		},
		NewSet("f1"),
	)
}

func TestTotalizeAddsSink(t *testing.T) {
	// partial: only the word "a" is alive
	d := mustDFA(t,
		NewSet("q0", "q1"),
		NewSet("a", "b"),
		"q0",
		dtrans{tkey("q0", "a"): "q1"},
		NewSet("q1"),
	)
	total := totalize(d)

	require.Equal(t, 3, total.States.Len())
	for s := range total.States {
		for a := range total.Alphabet {
			_, ok := total.Step(s, a)
			require.True(t, ok, "missing transition %q on %q", s, a)
		}
	}
	for _, w := range wordsUpTo([]string{"a", "b"}, 4) {
		require.Equal(t, d.Accepts(w), total.Accepts(w), "word %v", w)
	}
}

func TestTotalizeKeepsTotalTables(t *testing.T) {
	total := totalize(evenAs(t))
	require.Equal(t, 2, total.States.Len())
}

func TestComplement(t *testing.T) {
	d := evenAs(t)
	comp := Complement(d)
	for _, w := range wordsUpTo([]string{"a", "b"}, 4) {
		require.Equal(t, !d.Accepts(w), comp.Accepts(w), "word %v", w)
	}
}

func TestComplementOfPartial(t *testing.T) {
	// words dying on a missing transition flip to accepted
	d := mustDFA(t,
		NewSet("q0", "q1"),
		NewSet("a"),
		"q0",
		dtrans{tkey("q0", "a"): "q1"},
		NewSet("q1"),
	)
	comp := Complement(d)
	require.True(t, comp.Accepts(nil))
	require.False(t, comp.Accepts(splitWord("a")))
	require.True(t, comp.Accepts(splitWord("aa")))
	require.True(t, comp.Accepts(splitWord("aaa")))
}

func TestIntersect(t *testing.T) {
	a := evenAs(t)
	b := endsInB(t)
	both, err := Intersect(a, b)
	require.NoError(t, err)
	for _, w := range wordsUpTo([]string{"a", "b"}, 4) {
		require.Equal(t, a.Accepts(w) && b.Accepts(w), both.Accepts(w), "word %v", w)
	}
}

func TestUnion(t *testing.T) {
	a := evenAs(t)
	b := endsInB(t)
	either, err := Union(a, b)
	require.NoError(t, err)
	for _, w := range wordsUpTo([]string{"a", "b"}, 4) {
		require.Equal(t, a.Accepts(w) || b.Accepts(w), either.Accepts(w), "word %v", w)
	}
}

func TestProductAlphabetMismatch(t *testing.T) {
	a := evenAs(t)
	b := mustDFA(t, NewSet("q0"), NewSet("a"), "q0", dtrans{}, NewSet("q0"))

	_, err := Intersect(a, b)
	var ie *InvariantError
	require.ErrorAs(t, err, &ie)

	_, err = Union(a, b)
	require.ErrorAs(t, err, &ie)
}

func TestReverse(t *testing.T) {
	// accepts exactly "ab"
	d := mustDFA(t,
		NewSet("q0", "q1", "q2"),
		NewSet("a", "b"),
		"q0",
		dtrans{
			tkey("q0", "a"): "q1",
			tkey("q1", "b"): "q2",
		},
		NewSet("q2"),
	)
	rev, err := Reverse(d, "ε")
	require.NoError(t, err)

	for _, w := range wordsUpTo([]string{"a", "b"}, 3) {
		reversed := make([]string, 0, len(w))
		for i := len(w) - 1; i >= 0; i-- {
			reversed = append(reversed, w[i])
		}
		require.Equal(t, d.Accepts(w), rev.Accepts(reversed), "word %v", w)
	}
}

func TestReverseParityLanguage(t *testing.T) {
	rev, err := Reverse(evenAs(t), "ε")
	require.NoError(t, err)

	// the a-parity of a word survives reversal
	d := evenAs(t)
	for _, w := range wordsUpTo([]string{"a", "b"}, 4) {
		require.Equal(t, d.Accepts(w), rev.Accepts(w), "word %v", w)
	}
}

func TestReverseEpsilonCollision(t *testing.T) {
	_, err := Reverse(evenAs(t), "a")
	var ie *InvariantError
	require.ErrorAs(t, err, &ie)
}
