package regex

// Node is one node of a parsed regular expression.
type Node interface {
	node()
}

// Literal matches exactly one symbol.
type Literal struct {
	Sym rune
}

// Empty matches the empty word.
type Empty struct{}

// Concat matches a word of A followed by a word of B.
type Concat struct {
	A, B Node
}

// Alternate matches a word of A or a word of B.
type Alternate struct {
	A, B Node
}

// Star matches zero or more words of A.
type Star struct {
	A Node
}

func (Literal) node()   {}
func (Empty) node()     {}
func (Concat) node()    {}
func (Alternate) node() {}
func (Star) node()      {}
