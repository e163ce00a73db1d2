package fsa

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// document is the on-disk shape of an automaton. Transition keys join
// state and symbol with a comma; NFA targets are lists, DFA targets
// single states.
type document struct {
	Type        string         `json:"type"`
	States      []string       `json:"states"`
	Alphabet    []string       `json:"alphabet"`
	Initial     string         `json:"initial"`
	Final       []string       `json:"final"`
	Transitions map[string]any `json:"transitions"`
}

// rawDocument defers transition parsing until the automaton type is
// known.
type rawDocument struct {
	Type        string                     `json:"type"`
	States      []string                   `json:"states"`
	Alphabet    []string                   `json:"alphabet"`
	Initial     string                     `json:"initial"`
	Final       []string                   `json:"final"`
	Transitions map[string]json.RawMessage `json:"transitions"`
}

// EncodeNFA renders an automaton over string states and symbols as
// indented JSON. Epsilon edges are written under the epsilon glyph,
// whatever the automaton's own epsilon symbol is.
func EncodeNFA(n *NFA[string, string]) ([]byte, error) {
	if n.Epsilon != epsilonText && n.Alphabet.Has(epsilonText) {
		return nil, invariantf("alphabet reserves the epsilon glyph %q", epsilonText)
	}
	doc := document{
		Type:        "nfa",
		States:      sortedTexts(n.States),
		Alphabet:    sortedTexts(n.Alphabet),
		Initial:     n.Initial,
		Final:       sortedTexts(n.Final),
		Transitions: make(map[string]any, len(n.Transitions)),
	}
	for key, targets := range n.Transitions {
		sym := key.Symbol
		if sym == n.Epsilon {
			sym = epsilonText
		}
		doc.Transitions[transKey(key.State, sym)] = sortedTexts(targets)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// EncodeDFA renders an automaton over string states and symbols as
// indented JSON.
func EncodeDFA(d *DFA[string, string]) ([]byte, error) {
	doc := document{
		Type:        "dfa",
		States:      sortedTexts(d.States),
		Alphabet:    sortedTexts(d.Alphabet),
		Initial:     d.Initial,
		Final:       sortedTexts(d.Final),
		Transitions: make(map[string]any, len(d.Transitions)),
	}
	for key, t := range d.Transitions {
		doc.Transitions[transKey(key.State, key.Symbol)] = t
	}
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeType reads the type tag of an encoded automaton so callers can
// dispatch to DecodeNFA or DecodeDFA.
func DecodeType(data []byte) (string, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("decode automaton: %w", err)
	}
	return raw.Type, nil
}

// DecodeNFA parses an encoded NFA and validates it. Edges under the
// epsilon glyph become epsilon transitions; a single target state may
// stand in for a one-element target list.
func DecodeNFA(data []byte) (*NFA[string, string], error) {
	raw, err := decodeDocument(data, "nfa")
	if err != nil {
		return nil, err
	}
	transitions := make(map[Pair[string, string]]Set[string], len(raw.Transitions))
	for key, msg := range raw.Transitions {
		state, symbol, err := splitTransKey(key)
		if err != nil {
			return nil, err
		}
		targets, err := decodeTargets(msg)
		if err != nil {
			return nil, fmt.Errorf("transition %q: %w", key, err)
		}
		transitions[Pair[string, string]{State: state, Symbol: symbol}] = NewSet(targets...)
	}
	return NewNFA(
		NewSet(raw.States...),
		NewSet(raw.Alphabet...),
		raw.Initial,
		transitions,
		NewSet(raw.Final...),
		epsilonText,
	)
}

// DecodeDFA parses an encoded DFA and validates it.
func DecodeDFA(data []byte) (*DFA[string, string], error) {
	raw, err := decodeDocument(data, "dfa")
	if err != nil {
		return nil, err
	}
	transitions := make(map[Pair[string, string]]string, len(raw.Transitions))
	for key, msg := range raw.Transitions {
		state, symbol, err := splitTransKey(key)
		if err != nil {
			return nil, err
		}
		var target string
		if err := json.Unmarshal(msg, &target); err != nil {
			return nil, fmt.Errorf("transition %q: want a single target state", key)
		}
		transitions[Pair[string, string]{State: state, Symbol: symbol}] = target
	}
	return NewDFA(
		NewSet(raw.States...),
		NewSet(raw.Alphabet...),
		raw.Initial,
		transitions,
		NewSet(raw.Final...),
	)
}

func decodeDocument(data []byte, want string) (*rawDocument, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode automaton: %w", err)
	}
	if raw.Type != want {
		return nil, fmt.Errorf("decode automaton: type %q, want %q", raw.Type, want)
	}
	return &raw, nil
}

func decodeTargets(msg json.RawMessage) ([]string, error) {
	var many []string
	if err := json.Unmarshal(msg, &many); err == nil {
		return many, nil
	}
	var one string
	if err := json.Unmarshal(msg, &one); err == nil {
		return []string{one}, nil
	}
	return nil, errors.New("want a target state or a list of target states")
}

func transKey(state, symbol string) string {
	return state + "," + symbol
}

// splitTransKey splits a "state,symbol" transition key at the first
// comma. Composite state names contain no commas, so the first comma
// always separates state from symbol.
func splitTransKey(key string) (string, string, error) {
	state, symbol, ok := strings.Cut(key, ",")
	if !ok {
		return "", "", fmt.Errorf("transition key %q: want \"state,symbol\"", key)
	}
	return state, symbol, nil
}
