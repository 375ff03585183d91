package domain

// combinations invokes fn with every k-card subset of cards, in lexicographic
// index order. The slice passed to fn is reused between calls; fn must copy it
// if it keeps a reference. One generator serves the pair, triple and five-card
// enumeration paths so no shape repeats its own iteration logic.
func combinations(cards []Card, k int, fn func([]Card)) {
	if k < 1 || k > len(cards) {
		return
	}
	subset := make([]Card, k)
	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			fn(subset)
			return
		}
		for i := start; i <= len(cards)-(k-depth); i++ {
			subset[depth] = cards[i]
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)
}

// LegalPlays enumerates every combination the hand can legally contribute
// given the table and game-start status. With a combination on the table only
// plays that beat it survive; at game start every play must include the three
// of clubs; on a cleared table any shape may open.
//
// The result can be empty, which means the caller has to pass.
func LegalPlays(hand []Card, table Combination, gameStart bool) []Combination {
	sorted := sortedCopy(hand)

	var all []Combination
	for _, c := range sorted {
		all = append(all, IdentifyCombination([]Card{c}))
	}
	combinations(sorted, 2, func(cs []Card) {
		if cs[0].Rank == cs[1].Rank {
			all = append(all, IdentifyCombination(cs))
		}
	})
	combinations(sorted, 3, func(cs []Card) {
		if cs[0].Rank == cs[1].Rank && cs[1].Rank == cs[2].Rank {
			all = append(all, IdentifyCombination(cs))
		}
	})
	combinations(sorted, 5, func(cs []Card) {
		if combo := IdentifyCombination(cs); combo.Type != Invalid {
			all = append(all, combo)
		}
	})

	if !table.Empty() {
		var out []Combination
		for _, combo := range all {
			if beats(combo, table) {
				out = append(out, combo)
			}
		}
		return out
	}

	if gameStart {
		var out []Combination
		for _, combo := range all {
			if containsCard(combo.Cards, ThreeOfClubs) {
				out = append(out, combo)
			}
		}
		return out
	}

	return all
}
