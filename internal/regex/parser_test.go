package regex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		pattern string
		want    Node
	}{
		{"a", Literal{Sym: 'a'}},
		{"ε", Empty{}},
		{"ab", Concat{A: Literal{Sym: 'a'}, B: Literal{Sym: 'b'}}},
		{"(ab)", Concat{A: Literal{Sym: 'a'}, B: Literal{Sym: 'b'}}},
		{"a*", Star{A: Literal{Sym: 'a'}}},
		{"εa", Concat{A: Empty{}, B: Literal{Sym: 'a'}}},
		{
			"a|bc*",
			Alternate{
				A: Literal{Sym: 'a'},
				B: Concat{A: Literal{Sym: 'b'}, B: Star{A: Literal{Sym: 'c'}}},
			},
		},
		{
			"(a|b)*",
			Star{A: Alternate{A: Literal{Sym: 'a'}, B: Literal{Sym: 'b'}}},
		},
		{
			"(a|b)c",
			Concat{
				A: Alternate{A: Literal{Sym: 'a'}, B: Literal{Sym: 'b'}},
				B: Literal{Sym: 'c'},
			},
		},
	}
	for _, tt := range tests {
		got, err := Parse(tt.pattern)
		require.NoError(t, err, "pattern %q", tt.pattern)
		require.Equal(t, tt.want, got, "pattern %q", tt.pattern)
	}
}

func TestParseLeftAssociative(t *testing.T) {
	got, err := Parse("abc")
	require.NoError(t, err)
	require.Equal(t, Concat{
		A: Concat{A: Literal{Sym: 'a'}, B: Literal{Sym: 'b'}},
		B: Literal{Sym: 'c'},
	}, got)

	got, err = Parse("a|b|c")
	require.NoError(t, err)
	require.Equal(t, Alternate{
		A: Alternate{A: Literal{Sym: 'a'}, B: Literal{Sym: 'b'}},
		B: Literal{Sym: 'c'},
	}, got)
}

func TestParseErrors(t *testing.T) {
	patterns := []string{
		"",
		"(",
		")",
		"(a",
		"a)",
		"|a",
		"a|",
		"*",
		"a**",
		"a b",
		"ж",
	}
	for _, pattern := range patterns {
		_, err := Parse(pattern)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, "pattern %q", pattern)
		require.Equal(t, pattern, pe.Pattern)
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("a|")
	require.ErrorContains(t, err, `parse "a|":`)
}
