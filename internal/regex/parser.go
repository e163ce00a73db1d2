package regex

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ParseError reports a pattern that does not parse.
type ParseError struct {
	Pattern string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Pattern, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// The grammar, lowest precedence first: union, then concatenation,
// then the star suffix, then atoms. Concatenation is written by
// adjacency, so a term is just a run of factors.

type exprRule struct {
	First *termRule   `parser:"@@"`
	Rest  []*termRule `parser:"( '|' @@ )*"`
}

type termRule struct {
	Factors []*factorRule `parser:"@@+"`
}

type factorRule struct {
	Atom *atomRule `parser:"@@"`
	Star bool      `parser:"@'*'?"`
}

type atomRule struct {
	Literal *string   `parser:"@Literal"`
	Epsilon bool      `parser:"| @Epsilon"`
	Group   *exprRule `parser:"| '(' @@ ')'"`
}

var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Literal", Pattern: `[0-9A-Za-z]`},
	{Name: "Epsilon", Pattern: `ε`},
	{Name: "Punct", Pattern: `[|*()]`},
})

var regexParser = participle.MustBuild[exprRule](
	participle.Lexer(regexLexer),
)

// Parse parses a regular expression over the literals [0-9A-Za-z] with
// union '|', the Kleene star '*', grouping parentheses and the epsilon
// atom 'ε'. The whole input must parse; trailing text is an error.
func Parse(pattern string) (Node, error) {
	tree, err := regexParser.ParseString("", pattern)
	if err != nil {
		return nil, &ParseError{Pattern: pattern, Err: err}
	}
	return tree.lower(), nil
}

// Union and concatenation lower left associated.

func (e *exprRule) lower() Node {
	n := e.First.lower()
	for _, t := range e.Rest {
		n = Alternate{A: n, B: t.lower()}
	}
	return n
}

func (t *termRule) lower() Node {
	n := t.Factors[0].lower()
	for _, f := range t.Factors[1:] {
		n = Concat{A: n, B: f.lower()}
	}
	return n
}

func (f *factorRule) lower() Node {
	n := f.Atom.lower()
	if f.Star {
		n = Star{A: n}
	}
	return n
}

func (a *atomRule) lower() Node {
	switch {
	case a.Literal != nil:
		return Literal{Sym: []rune(*a.Literal)[0]}
	case a.Epsilon:
		return Empty{}
	default:
		return a.Group.lower()
	}
}
