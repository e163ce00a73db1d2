package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/olekukonko/tablewriter"

	"automata/internal/fsa"
)

// runShell drives the interactive menu over one automaton.
func runShell(a *automaton) error {
	fmt.Println(a.summary())
	for {
		menu := promptui.Select{
			Label: "automata",
			Items: []string{
				"match a word",
				"step through a word",
				"transition table",
				"synthesize regex",
				"export DOT",
				"save JSON",
				"quit",
			},
		}
		_, choice, err := menu.Run()
		if err != nil {
			if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
				return nil
			}
			return err
		}

		switch choice {
		case "match a word":
			err = shellMatch(a)
		case "step through a word":
			err = shellStep(a)
		case "transition table":
			printTable(a)
		case "synthesize regex":
			fmt.Println(a.toRegex())
		case "export DOT":
			err = shellExport(a, "DOT file", writeDOTFile)
		case "save JSON":
			err = shellExport(a, "JSON file", saveJSONFile)
		case "quit":
			return nil
		}

		if err == promptui.ErrInterrupt {
			continue
		}
		if err == promptui.ErrEOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func shellMatch(a *automaton) error {
	word, err := askWord()
	if err != nil {
		return err
	}
	if a.accepts(word) {
		fmt.Println("accept")
	} else {
		fmt.Println("reject")
	}
	return nil
}

// shellStep pushes the word one symbol at a time and prints the cursor
// after every push.
func shellStep(a *automaton) error {
	word, err := askWord()
	if err != nil {
		return err
	}
	if a.dfa != nil {
		tr := a.dfa.Transducer()
		fmt.Printf("start: %s\n", a.dfa.Initial)
		for _, sym := range word {
			tr.Push(sym)
			cur, ok := tr.Current()
			if !ok {
				fmt.Printf("%s -> dead\n", sym)
				break
			}
			fmt.Printf("%s -> %s (accepting: %t)\n", sym, cur, tr.IsAccepting())
		}
		fmt.Printf("accepted: %t\n", tr.IsAccepting())
		return nil
	}
	tr := a.nfa.Transducer()
	fmt.Printf("start: {%s}\n", strings.Join(sorted(tr.Current()), " "))
	for _, sym := range word {
		tr.Push(sym)
		fmt.Printf("%s -> {%s} (accepting: %t)\n", sym, strings.Join(sorted(tr.Current()), " "), tr.IsAccepting())
	}
	fmt.Printf("accepted: %t\n", tr.IsAccepting())
	return nil
}

// printTable renders the transition table, one row per state, one
// column per symbol. NFA tables get an extra epsilon column.
func printTable(a *automaton) {
	table := tablewriter.NewWriter(os.Stdout)
	if a.dfa != nil {
		symbols := sorted(a.dfa.Alphabet)
		table.SetHeader(append([]string{"state"}, symbols...))
		for _, s := range sorted(a.dfa.States) {
			row := []string{decorate(s, s == a.dfa.Initial, a.dfa.Final.Has(s))}
			for _, sym := range symbols {
				if t, ok := a.dfa.Step(s, sym); ok {
					row = append(row, t)
				} else {
					row = append(row, "-")
				}
			}
			table.Append(row)
		}
		table.Render()
		return
	}

	symbols := sorted(a.nfa.Alphabet)
	header := append([]string{"state"}, symbols...)
	table.SetHeader(append(header, "ε"))
	cell := func(s, sym string) string {
		targets := a.nfa.Transitions[fsa.Pair[string, string]{State: s, Symbol: sym}]
		if targets.Len() == 0 {
			return "-"
		}
		return strings.Join(sorted(targets), " ")
	}
	for _, s := range sorted(a.nfa.States) {
		row := []string{decorate(s, s == a.nfa.Initial, a.nfa.Final.Has(s))}
		for _, sym := range symbols {
			row = append(row, cell(s, sym))
		}
		row = append(row, cell(s, a.nfa.Epsilon))
		table.Append(row)
	}
	table.Render()
}

// decorate marks the initial state with an arrow and final states with
// a star, the usual textbook notation.
func decorate(s string, initial, final bool) string {
	switch {
	case initial && final:
		return "-> *" + s
	case initial:
		return "-> " + s
	case final:
		return "*" + s
	}
	return s
}

func askWord() ([]string, error) {
	prompt := promptui.Prompt{Label: "word"}
	s, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return splitInput(s), nil
}

func shellExport(a *automaton, label string, write func(*automaton, string) error) error {
	prompt := promptui.Prompt{Label: label}
	path, err := prompt.Run()
	if err != nil {
		return err
	}
	return write(a, path)
}

func saveJSONFile(a *automaton, path string) error {
	data, err := a.encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("automaton written to %s\n", path)
	return nil
}
