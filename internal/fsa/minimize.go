package fsa

import "github.com/bits-and-blooms/bitset"

// Minimize returns the smallest DFA accepting the same language as d.
// Unreachable states are pruned first, then distinguishable state
// pairs are marked until a fixpoint: a pair is distinguishable when
// exactly one of the two states is final, when some symbol is defined
// for exactly one of them, or when some symbol leads into an already
// marked pair. The surviving equivalence classes become the result's
// states, each named after its members.
func Minimize[T, S comparable](d *DFA[T, S]) *DFA[T, string] {
	all := sortedByText(d.States)
	position := make(map[S]int, len(all))
	for i, s := range all {
		position[s] = i
	}

	// States the initial state cannot reach carry no weight in the
	// pair table, so prune them up front.
	visited := bitset.New(uint(len(all)))
	visited.Set(uint(position[d.Initial]))
	queue := []S{d.Initial}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for a := range d.Alphabet {
			t, ok := d.Transitions[Pair[S, T]{State: cur, Symbol: a}]
			if !ok {
				continue
			}
			if i := uint(position[t]); !visited.Test(i) {
				visited.Set(i)
				queue = append(queue, t)
			}
		}
	}

	order := make([]S, 0, visited.Count())
	for _, s := range all {
		if visited.Test(uint(position[s])) {
			order = append(order, s)
		}
	}
	index := make(map[S]int, len(order))
	for i, s := range order {
		index[s] = i
	}

	n := len(order)
	marked := bitset.New(uint(n * n))
	pair := func(i, j int) uint {
		if i > j {
			i, j = j, i
		}
		return uint(i*n + j)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.Final.Has(order[i]) != d.Final.Has(order[j]) {
				marked.Set(pair(i, j))
			}
		}
	}

	for {
		changed := false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if marked.Test(pair(i, j)) {
					continue
				}
				for a := range d.Alphabet {
					ti, oki := d.Transitions[Pair[S, T]{State: order[i], Symbol: a}]
					tj, okj := d.Transitions[Pair[S, T]{State: order[j], Symbol: a}]
					if oki != okj {
						marked.Set(pair(i, j))
						changed = true
						break
					}
					if !oki || ti == tj {
						continue
					}
					if marked.Test(pair(index[ti], index[tj])) {
						marked.Set(pair(i, j))
						changed = true
						break
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	// At the fixpoint indistinguishability is transitive, so a state
	// joins the first class whose representative it matches.
	var reps []int
	var classes []Set[S]
	classOf := make([]int, n)
	for i := 0; i < n; i++ {
		assigned := false
		for c, r := range reps {
			if !marked.Test(pair(i, r)) {
				classes[c].Add(order[i])
				classOf[i] = c
				assigned = true
				break
			}
		}
		if !assigned {
			reps = append(reps, i)
			classes = append(classes, NewSet(order[i]))
			classOf[i] = len(classes) - 1
		}
	}

	names := make([]string, len(classes))
	states := NewSet[string]()
	final := NewSet[string]()
	for c, members := range classes {
		names[c] = setName(members)
		states.Add(names[c])
		for m := range members {
			if d.Final.Has(m) {
				final.Add(names[c])
				break
			}
		}
	}

	transitions := make(map[Pair[string, T]]string)
	for i, s := range order {
		for a := range d.Alphabet {
			t, ok := d.Transitions[Pair[S, T]{State: s, Symbol: a}]
			if !ok {
				continue
			}
			transitions[Pair[string, T]{State: names[classOf[i]], Symbol: a}] = names[classOf[index[t]]]
		}
	}

	return &DFA[T, string]{
		States:      states,
		Alphabet:    d.Alphabet.Clone(),
		Initial:     names[classOf[index[d.Initial]]],
		Final:       final,
		Transitions: transitions,
	}
}
