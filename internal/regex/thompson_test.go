package regex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"automata/internal/fsa"
)

func key(s int, r rune) fsa.Pair[int, rune] {
	return fsa.Pair[int, rune]{State: s, Symbol: r}
}

func mustTree(t *testing.T, pattern string) Node {
	t.Helper()
	tree, err := Parse(pattern)
	require.NoError(t, err)
	return tree
}

func TestToNFALiteral(t *testing.T) {
	n := ToNFA(mustTree(t, "a"))
	require.True(t, n.States.Equal(fsa.NewSet(0, 1)))
	require.True(t, n.Alphabet.Equal(fsa.NewSet('a')))
	require.Equal(t, 0, n.Initial)
	require.True(t, n.Final.Equal(fsa.NewSet(1)))
	require.Equal(t, Epsilon, n.Epsilon)
	require.True(t, n.Transitions[key(0, 'a')].Equal(fsa.NewSet(1)))
}

func TestToNFAEpsilonAtom(t *testing.T) {
	n := ToNFA(mustTree(t, "ε"))
	require.True(t, n.States.Equal(fsa.NewSet(0, 1)))
	require.Equal(t, 0, n.Alphabet.Len())
	require.True(t, n.Transitions[key(0, Epsilon)].Equal(fsa.NewSet(1)))
	require.True(t, n.Accepts(nil))
	require.False(t, n.Accepts([]rune("a")))
}

func TestToNFAConcat(t *testing.T) {
	// subtrees occupy contiguous id blocks: a is (0,1), b is (2,3)
	n := ToNFA(mustTree(t, "ab"))
	require.True(t, n.States.Equal(fsa.NewSet(0, 1, 2, 3)))
	require.Equal(t, 0, n.Initial)
	require.True(t, n.Final.Equal(fsa.NewSet(3)))
	require.True(t, n.Transitions[key(0, 'a')].Equal(fsa.NewSet(1)))
	require.True(t, n.Transitions[key(1, Epsilon)].Equal(fsa.NewSet(2)))
	require.True(t, n.Transitions[key(2, 'b')].Equal(fsa.NewSet(3)))
}

func TestToNFAAlternate(t *testing.T) {
	// initial 0, a is (1,2), b is (3,4), final 5
	n := ToNFA(mustTree(t, "a|b"))
	require.True(t, n.States.Equal(fsa.NewSet(0, 1, 2, 3, 4, 5)))
	require.Equal(t, 0, n.Initial)
	require.True(t, n.Final.Equal(fsa.NewSet(5)))
	require.True(t, n.Transitions[key(0, Epsilon)].Equal(fsa.NewSet(1, 3)))
	require.True(t, n.Transitions[key(1, 'a')].Equal(fsa.NewSet(2)))
	require.True(t, n.Transitions[key(3, 'b')].Equal(fsa.NewSet(4)))
	require.True(t, n.Transitions[key(2, Epsilon)].Equal(fsa.NewSet(5)))
	require.True(t, n.Transitions[key(4, Epsilon)].Equal(fsa.NewSet(5)))
}

func TestToNFAStar(t *testing.T) {
	// initial 0, a is (1,2), final 3; skip, enter, exit and repeat edges
	n := ToNFA(mustTree(t, "a*"))
	require.True(t, n.States.Equal(fsa.NewSet(0, 1, 2, 3)))
	require.Equal(t, 0, n.Initial)
	require.True(t, n.Final.Equal(fsa.NewSet(3)))
	require.True(t, n.Transitions[key(0, Epsilon)].Equal(fsa.NewSet(1, 3)))
	require.True(t, n.Transitions[key(1, 'a')].Equal(fsa.NewSet(2)))
	require.True(t, n.Transitions[key(2, Epsilon)].Equal(fsa.NewSet(1, 3)))
}

func TestRegexScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		accepts []string
		rejects []string
	}{
		{
			pattern: "a",
			accepts: []string{"a"},
			rejects: []string{"", "b"},
		},
		{
			pattern: "a|b",
			accepts: []string{"a", "b"},
			rejects: []string{"", "ab"},
		},
		{
			pattern: "(a|b)*abb",
			accepts: []string{"abb", "aabb", "babb", "aababb", "abbabb"},
			rejects: []string{"", "a", "ab", "bba", "abba", "bab", "abbb"},
		},
		{
			pattern: "a*",
			accepts: []string{"", "a", "aa", "aaaa"},
			rejects: []string{"b", "ab", "ba"},
		},
		{
			pattern: "a|ab",
			accepts: []string{"a", "ab"},
			rejects: []string{"", "b", "aab", "abb"},
		},
		{
			pattern: "ε",
			accepts: []string{""},
			rejects: []string{"a", "ε"},
		},
		{
			pattern: "(ε|a)b",
			accepts: []string{"b", "ab"},
			rejects: []string{"", "a", "aab", "abb"},
		},
	}
	for _, tt := range tests {
		r, err := Compile(tt.pattern)
		require.NoError(t, err, "pattern %q", tt.pattern)
		for _, w := range tt.accepts {
			require.True(t, r.MatchString(w), "pattern %q, word %q", tt.pattern, w)
			require.True(t, r.NFA().Accepts([]rune(w)), "pattern %q, word %q", tt.pattern, w)
		}
		for _, w := range tt.rejects {
			require.False(t, r.MatchString(w), "pattern %q, word %q", tt.pattern, w)
			require.False(t, r.NFA().Accepts([]rune(w)), "pattern %q, word %q", tt.pattern, w)
		}
	}
}

// wordsOver enumerates every word over the alphabet up to the given
// length, the empty word included.
func wordsOver(alphabet string, length int) []string {
	words := []string{""}
	for i := 0; i < len(words); i++ {
		if len([]rune(words[i])) == length {
			continue
		}
		for _, r := range alphabet {
			words = append(words, words[i]+string(r))
		}
	}
	return words
}

func TestDerivationEquivalence(t *testing.T) {
	patterns := []string{
		"(ab|a)*c",
		"(a|b)*abb",
		"a*b*",
		"a|ab|abb",
	}
	for _, pattern := range patterns {
		r := MustCompile(pattern)
		flat := r.NFA().WithoutEpsilon()
		for _, w := range wordsOver("abc", 4) {
			word := []rune(w)
			want := r.NFA().Accepts(word)
			require.Equal(t, want, r.RawDFA().Accepts(word), "pattern %q, word %q", pattern, w)
			require.Equal(t, want, r.DFA().Accepts(word), "pattern %q, word %q", pattern, w)
			require.Equal(t, want, flat.Accepts(word), "pattern %q, word %q", pattern, w)
		}
	}
}
