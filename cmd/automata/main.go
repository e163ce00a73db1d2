package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"automata/internal/fsa"
	"automata/internal/regex"
)

// automaton is the one machine the command operates on: either an NFA
// or a DFA, squashed to string states and symbols.
type automaton struct {
	nfa *fsa.NFA[string, string]
	dfa *fsa.DFA[string, string]
}

type arrayFlags []string

func (a *arrayFlags) String() string { return strings.Join(*a, "; ") }

func (a *arrayFlags) Set(v string) error {
	*a = append(*a, v)
	return nil
}

func main() {
	var (
		pattern     = flag.String("regex", "", "compile a regular expression into an NFA")
		load        = flag.String("load", "", "load an automaton from a JSON file")
		kind        = flag.String("type", "", "build an automaton of this type (nfa or dfa)")
		alphabet    = flag.String("alphabet", "", "comma-separated alphabet symbols")
		states      = flag.String("states", "", "comma-separated state names")
		initial     = flag.String("initial", "", "initial state")
		final       = flag.String("final", "", "comma-separated final states")
		determinize = flag.Bool("determinize", false, "convert to a DFA by subset construction")
		minimize    = flag.Bool("minimize", false, "minimize (determinizes an NFA first)")
		complement  = flag.Bool("complement", false, "complement (determinizes an NFA first)")
		toRegex     = flag.Bool("to-regex", false, "synthesize a regular expression and print it")
		match       = flag.String("match", "", "word to run through the automaton")
		save        = flag.String("save", "", "write the automaton to a JSON file")
		dot         = flag.String("dot", "", "write the automaton as Graphviz DOT (\"-\" for stdout)")
		interactive = flag.Bool("it", false, "open the interactive shell")
	)
	var transitions arrayFlags
	flag.Var(&transitions, "transition", "transition \"state,symbol=target\" or \"state,symbol=t1|t2\" (repeatable)")
	flag.Parse()

	matchSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "match" {
			matchSet = true
		}
	})

	var a *automaton
	switch {
	case *pattern != "":
		re, err := regex.Compile(*pattern)
		if err != nil {
			log.Fatal(err)
		}
		a = &automaton{nfa: re.NFA().Squash()}
	case *load != "":
		data, err := os.ReadFile(*load)
		if err != nil {
			log.Fatal(err)
		}
		a, err = decodeAutomaton(data)
		if err != nil {
			log.Fatal(err)
		}
	case *kind != "":
		var err error
		a, err = buildAutomaton(*kind, *alphabet, *states, *initial, *final, transitions)
		if err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: %s (-regex <pattern> | -load <file> | -type nfa|dfa -alphabet ... -states ... -initial ... -final ... -transition ...) [operations]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *determinize || *minimize || *complement {
		a = a.determinized()
	}
	if *minimize {
		a = &automaton{dfa: fsa.Minimize(a.dfa)}
	}
	if *complement {
		a = &automaton{dfa: fsa.Complement(a.dfa)}
	}

	if *toRegex {
		fmt.Println(a.toRegex())
	}
	rejected := false
	if matchSet {
		if a.accepts(splitInput(*match)) {
			fmt.Println("accept")
		} else {
			fmt.Println("reject")
			rejected = true
		}
	}
	if *save != "" {
		if err := saveJSONFile(a, *save); err != nil {
			log.Fatal(err)
		}
	}
	if *dot != "" {
		if err := writeDOTFile(a, *dot); err != nil {
			log.Fatal(err)
		}
	}
	if *interactive {
		if err := runShell(a); err != nil {
			log.Fatal(err)
		}
		return
	}
	if !*toRegex && !matchSet && *save == "" && *dot == "" {
		fmt.Println(a.summary())
		printTable(a)
	}
	if rejected {
		os.Exit(1)
	}
}

func decodeAutomaton(data []byte) (*automaton, error) {
	kind, err := fsa.DecodeType(data)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "nfa":
		n, err := fsa.DecodeNFA(data)
		if err != nil {
			return nil, err
		}
		return &automaton{nfa: n}, nil
	case "dfa":
		d, err := fsa.DecodeDFA(data)
		if err != nil {
			return nil, err
		}
		return &automaton{dfa: d}, nil
	default:
		return nil, fmt.Errorf("unknown automaton type %q", kind)
	}
}

func buildAutomaton(kind, alphabet, states, initial, final string, transitions []string) (*automaton, error) {
	stateSet := fsa.NewSet(splitCSV(states)...)
	alphabetSet := fsa.NewSet(splitCSV(alphabet)...)
	finalSet := fsa.NewSet(splitCSV(final)...)

	switch kind {
	case "nfa":
		table := make(map[fsa.Pair[string, string]]fsa.Set[string])
		for _, t := range transitions {
			state, symbol, targets, err := parseTransition(t)
			if err != nil {
				return nil, err
			}
			key := fsa.Pair[string, string]{State: state, Symbol: symbol}
			if _, ok := table[key]; !ok {
				table[key] = fsa.NewSet[string]()
			}
			for _, target := range targets {
				table[key].Add(target)
			}
		}
		n, err := fsa.NewNFA(stateSet, alphabetSet, initial, table, finalSet, "ε")
		if err != nil {
			return nil, err
		}
		return &automaton{nfa: n}, nil
	case "dfa":
		table := make(map[fsa.Pair[string, string]]string)
		for _, t := range transitions {
			state, symbol, targets, err := parseTransition(t)
			if err != nil {
				return nil, err
			}
			if len(targets) != 1 {
				return nil, fmt.Errorf("transition %q: a dfa needs exactly one target", t)
			}
			table[fsa.Pair[string, string]{State: state, Symbol: symbol}] = targets[0]
		}
		d, err := fsa.NewDFA(stateSet, alphabetSet, initial, table, finalSet)
		if err != nil {
			return nil, err
		}
		return &automaton{dfa: d}, nil
	default:
		return nil, fmt.Errorf("unknown automaton type %q (want nfa or dfa)", kind)
	}
}

func parseTransition(t string) (string, string, []string, error) {
	left, right, ok := strings.Cut(t, "=")
	if !ok {
		return "", "", nil, fmt.Errorf("transition %q: want \"state,symbol=target\"", t)
	}
	state, symbol, ok := strings.Cut(left, ",")
	if !ok {
		return "", "", nil, fmt.Errorf("transition %q: want \"state,symbol=target\"", t)
	}
	return state, symbol, strings.Split(right, "|"), nil
}

func (a *automaton) determinized() *automaton {
	if a.dfa != nil {
		return a
	}
	return &automaton{dfa: a.nfa.ToDFA()}
}

func (a *automaton) accepts(word []string) bool {
	if a.dfa != nil {
		return a.dfa.Accepts(word)
	}
	return a.nfa.Accepts(word)
}

func (a *automaton) toRegex() string {
	if a.dfa != nil {
		return a.dfa.ToRegex()
	}
	return a.nfa.ToRegex()
}

func (a *automaton) encode() ([]byte, error) {
	if a.dfa != nil {
		return fsa.EncodeDFA(a.dfa)
	}
	return fsa.EncodeNFA(a.nfa)
}

func (a *automaton) writeDOT(w io.Writer) error {
	if a.dfa != nil {
		return a.dfa.WriteDOT(w)
	}
	return a.nfa.WriteDOT(w)
}

func (a *automaton) summary() string {
	if a.dfa != nil {
		return fmt.Sprintf("dfa: %d states, alphabet {%s}, %d final",
			a.dfa.States.Len(), strings.Join(sorted(a.dfa.Alphabet), " "), a.dfa.Final.Len())
	}
	return fmt.Sprintf("nfa: %d states, alphabet {%s}, %d final",
		a.nfa.States.Len(), strings.Join(sorted(a.nfa.Alphabet), " "), a.nfa.Final.Len())
}

func writeDOTFile(a *automaton, path string) error {
	if path == "-" {
		return a.writeDOT(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := a.writeDOT(f); err != nil {
		return err
	}
	fmt.Printf("DOT written to %s\n", path)
	return nil
}

// splitCSV splits a comma-separated flag value, trimming whitespace.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitInput turns a word flag into a symbol sequence. Words with
// commas split on them; anything else splits into single runes.
func splitInput(s string) []string {
	if s == "" {
		return nil
	}
	if strings.Contains(s, ",") {
		return strings.Split(s, ",")
	}
	word := make([]string, 0, len(s))
	for _, r := range s {
		word = append(word, string(r))
	}
	return word
}

func sorted(s fsa.Set[string]) []string {
	out := make([]string, 0, s.Len())
	for e := range s {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
