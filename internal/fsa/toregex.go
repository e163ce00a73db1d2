package fsa

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	epsilonText = "ε"
	emptyLang   = "∅"
)

// edgeKey addresses one edge of the generalized automaton used during
// state elimination. Labels are regex fragments; parallel edges are
// folded into a union as they are added.
type edgeKey struct {
	from, to string
}

// ToRegex synthesizes a regular expression for the language of the
// automaton by state elimination. Fresh start and stop endpoints are
// attached with epsilon edges, the original states are eliminated in
// sorted order, and the label left on the start-to-stop edge is the
// result. An automaton accepting nothing synthesizes to "∅".
func (n *NFA[T, S]) ToRegex() string {
	used := NewSet[string]()
	for s := range n.States {
		used.Add(text(s))
	}
	start := freshName("_S", used)
	used.Add(start)
	stop := freshName("_F", used)

	// Parallel edges fold into unions in insertion order, so insert in
	// sorted order to keep the synthesized text deterministic.
	var raw []dotEdge
	for key, targets := range n.Transitions {
		label := epsilonText
		if key.Symbol != n.Epsilon {
			label = text(key.Symbol)
		}
		for t := range targets {
			raw = append(raw, dotEdge{from: text(key.State), to: text(t), label: label})
		}
	}
	sortEdges(raw)

	edges := make(map[edgeKey]string)
	addEdge(edges, start, text(n.Initial), epsilonText)
	for f := range n.Final {
		addEdge(edges, text(f), stop, epsilonText)
	}
	for _, e := range raw {
		addEdge(edges, e.from, e.to, e.label)
	}

	interior := make([]string, 0, len(n.States))
	for _, s := range sortedByText(n.States) {
		interior = append(interior, text(s))
	}
	return eliminate(edges, start, stop, interior)
}

// ToRegex synthesizes a regular expression for the language of the
// automaton by state elimination, the same way the NFA variant does.
func (d *DFA[T, S]) ToRegex() string {
	used := NewSet[string]()
	for s := range d.States {
		used.Add(text(s))
	}
	start := freshName("_S", used)
	used.Add(start)
	stop := freshName("_F", used)

	var raw []dotEdge
	for key, t := range d.Transitions {
		raw = append(raw, dotEdge{from: text(key.State), to: text(t), label: text(key.Symbol)})
	}
	sortEdges(raw)

	edges := make(map[edgeKey]string)
	addEdge(edges, start, text(d.Initial), epsilonText)
	for f := range d.Final {
		addEdge(edges, text(f), stop, epsilonText)
	}
	for _, e := range raw {
		addEdge(edges, e.from, e.to, e.label)
	}

	interior := make([]string, 0, len(d.States))
	for _, s := range sortedByText(d.States) {
		interior = append(interior, text(s))
	}
	return eliminate(edges, start, stop, interior)
}

func freshName(base string, used Set[string]) string {
	name := base
	for used.Has(name) {
		name = "_" + name
	}
	return name
}

func addEdge(edges map[edgeKey]string, from, to, label string) {
	key := edgeKey{from: from, to: to}
	if existing, ok := edges[key]; ok {
		edges[key] = unionRx(existing, label)
		return
	}
	edges[key] = label
}

// eliminate removes the interior states one by one. Eliminating v
// replaces every path p -> v -> q with a direct edge labeled
// in(p,v) loop(v)* out(v,q), merged into any edge p -> q already
// present. The start and stop endpoints are never eliminated.
func eliminate(edges map[edgeKey]string, start, stop string, interior []string) string {
	for _, victim := range interior {
		loopStar := epsilonText
		if loop, ok := edges[edgeKey{from: victim, to: victim}]; ok {
			loopStar = kleeneRx(loop)
		}

		var ins, outs []edgeKey
		for key := range edges {
			if key.to == victim && key.from != victim {
				ins = append(ins, key)
			}
			if key.from == victim && key.to != victim {
				outs = append(outs, key)
			}
		}
		sort.Slice(ins, func(i, j int) bool { return ins[i].from < ins[j].from })
		sort.Slice(outs, func(i, j int) bool { return outs[i].to < outs[j].to })

		type pendingEdge struct {
			key   edgeKey
			label string
		}
		var pending []pendingEdge
		for _, in := range ins {
			for _, out := range outs {
				label := concatRx(concatRx(edges[in], loopStar), edges[out])
				pending = append(pending, pendingEdge{
					key:   edgeKey{from: in.from, to: out.to},
					label: label,
				})
			}
		}

		for key := range edges {
			if key.from == victim || key.to == victim {
				delete(edges, key)
			}
		}
		for _, p := range pending {
			addEdge(edges, p.key.from, p.key.to, p.label)
		}
	}

	label, ok := edges[edgeKey{from: start, to: stop}]
	if !ok {
		return emptyLang
	}
	return simplifyRegex(label)
}

// concatRx concatenates two regex fragments. The empty language
// annihilates, epsilon is the identity, and operands carrying a
// top-level union are parenthesized to keep precedence intact.
func concatRx(a, b string) string {
	if a == emptyLang || b == emptyLang {
		return emptyLang
	}
	if a == epsilonText {
		return b
	}
	if b == epsilonText {
		return a
	}
	if hasTopLevelUnion(a) {
		a = "(" + a + ")"
	}
	if hasTopLevelUnion(b) {
		b = "(" + b + ")"
	}
	return a + b
}

// unionRx joins two regex fragments with the union operator. The
// empty language is the identity and equal operands collapse.
func unionRx(a, b string) string {
	if a == emptyLang {
		return b
	}
	if b == emptyLang {
		return a
	}
	if a == b {
		return a
	}
	return "(" + a + "|" + b + ")"
}

// kleeneRx stars a regex fragment. Starring the empty language or
// epsilon yields epsilon; anything longer than a single atom is
// parenthesized first.
func kleeneRx(r string) string {
	if r == emptyLang || r == epsilonText {
		return epsilonText
	}
	if utf8.RuneCountInString(r) == 1 || wrapped(r) {
		return r + "*"
	}
	return "(" + r + ")*"
}

// hasTopLevelUnion reports whether r contains a union operator outside
// of any parentheses.
func hasTopLevelUnion(r string) bool {
	depth := 0
	for _, c := range r {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// wrapped reports whether r is exactly one parenthesized group.
func wrapped(r string) bool {
	if len(r) < 2 || r[0] != '(' || r[len(r)-1] != ')' {
		return false
	}
	return matchParen(r, 0) == len(r)-1
}

// matchParen returns the index of the ')' matching the '(' at open,
// or -1 when the parentheses are unbalanced.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// simplifyRegex rewrites the synthesized text until no rule applies:
// starred epsilon and starred empty language become epsilon, doubled
// union bars and empty groups disappear, redundant double parentheses
// collapse, and dangling top-level bars are trimmed.
func simplifyRegex(r string) string {
	for {
		next := r
		next = strings.ReplaceAll(next, epsilonText+"*", epsilonText)
		next = strings.ReplaceAll(next, emptyLang+"*", epsilonText)
		next = strings.ReplaceAll(next, "||", "|")
		next = strings.ReplaceAll(next, "()", "")
		next = collapseDoubleParens(next)
		next = strings.Trim(next, "|")
		if next == r {
			return r
		}
		r = next
	}
}

// collapseDoubleParens rewrites the first "((x))" group into "(x)".
// The simplify loop reapplies it until none remain.
func collapseDoubleParens(s string) string {
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '(' || s[i+1] != '(' {
			continue
		}
		outer := matchParen(s, i)
		inner := matchParen(s, i+1)
		if outer >= 0 && inner >= 0 && outer == inner+1 {
			return s[:i] + s[i+1:inner+1] + s[outer+1:]
		}
	}
	return s
}
