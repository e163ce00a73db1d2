package fsa

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

type dotEdge struct {
	from, to, label string
}

// WriteDOT writes the automaton as a Graphviz digraph. Final states
// are drawn as double circles and an unlabeled point marks the initial
// state. Epsilon edges are labeled with the epsilon glyph. The output
// is deterministic across runs.
func (n *NFA[T, S]) WriteDOT(w io.Writer) error {
	edges := make([]dotEdge, 0, len(n.Transitions))
	for key, targets := range n.Transitions {
		label := epsilonText
		if key.Symbol != n.Epsilon {
			label = text(key.Symbol)
		}
		for t := range targets {
			edges = append(edges, dotEdge{from: text(key.State), to: text(t), label: label})
		}
	}
	final := NewSet[string]()
	for f := range n.Final {
		final.Add(text(f))
	}
	return writeDOT(w, "NFA", sortedTexts(n.States), text(n.Initial), final, edges)
}

// WriteDOT writes the automaton as a Graphviz digraph, in the same
// shape the NFA variant uses.
func (d *DFA[T, S]) WriteDOT(w io.Writer) error {
	edges := make([]dotEdge, 0, len(d.Transitions))
	for key, t := range d.Transitions {
		edges = append(edges, dotEdge{from: text(key.State), to: text(t), label: text(key.Symbol)})
	}
	final := NewSet[string]()
	for f := range d.Final {
		final.Add(text(f))
	}
	return writeDOT(w, "DFA", sortedTexts(d.States), text(d.Initial), final, edges)
}

func sortEdges(edges []dotEdge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.from != b.from {
			return a.from < b.from
		}
		if a.to != b.to {
			return a.to < b.to
		}
		return a.label < b.label
	})
}

func writeDOT(w io.Writer, graph string, states []string, initial string, final Set[string], edges []dotEdge) error {
	sortEdges(edges)

	var buf strings.Builder
	fmt.Fprintf(&buf, "digraph %s {\n", graph)
	buf.WriteString("\trankdir=LR;\n")
	buf.WriteString("\t_start [shape=point];\n")
	for _, s := range states {
		shape := "circle"
		if final.Has(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&buf, "\t%s [shape=%s];\n", dotQuote(s), shape)
	}
	fmt.Fprintf(&buf, "\t_start -> %s;\n", dotQuote(initial))
	for _, e := range edges {
		fmt.Fprintf(&buf, "\t%s -> %s [label=%s];\n", dotQuote(e.from), dotQuote(e.to), dotQuote(e.label))
	}
	buf.WriteString("}\n")

	_, err := io.WriteString(w, buf.String())
	return err
}

// dotQuote wraps a name in double quotes, escaping quotes and
// backslashes so arbitrary state names stay valid DOT identifiers.
func dotQuote(s string) string {
	var buf strings.Builder
	buf.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}
	buf.WriteByte('"')
	return buf.String()
}
