package domain

// Outcome is the result of comparing a candidate play against the combination
// holding the table.
type Outcome int

const (
	Incomparable Outcome = iota
	Wins
	Loses
)

func (o Outcome) String() string {
	switch o {
	case Wins:
		return "wins"
	case Loses:
		return "loses"
	default:
		return "incomparable"
	}
}

// Compare ranks a candidate play against the incumbent table combination.
//
// Combinations of different sizes are incomparable, with one exception: four
// of a kind, a straight flush or a royal flush may be played over a lone
// single and always wins. Equal-sized sets must both classify as valid shapes
// or the comparison is incomparable. Among five-card shapes a stronger type
// always wins; within a type the shape key decides.
func Compare(candidate, incumbent []Card) Outcome {
	if len(candidate) != len(incumbent) {
		if len(incumbent) == 1 && len(candidate) == 5 {
			if c := IdentifyCombination(candidate); c.Type >= FourPlusOne {
				return Wins
			}
		}
		return Incomparable
	}

	cand := IdentifyCombination(candidate)
	inc := IdentifyCombination(incumbent)
	if cand.Type == Invalid || inc.Type == Invalid {
		return Incomparable
	}
	if beats(cand, inc) {
		return Wins
	}
	return Loses
}

// beats reports whether a classified candidate out-ranks a classified
// incumbent. Both must be valid. This is the single ordering used by the
// enumerator's filter and by move validation.
func beats(candidate, incumbent Combination) bool {
	if candidate.Count != incumbent.Count {
		return incumbent.Count == 1 && candidate.Count == 5 && candidate.Type >= FourPlusOne
	}
	if candidate.Type != incumbent.Type {
		// Equal-sized sets of 1, 2 or 3 cards always share a type, so this
		// only arises between five-card shapes.
		return candidate.Type > incumbent.Type
	}
	return candidate.Value > incumbent.Value
}
