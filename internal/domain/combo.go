package domain

// ComboType represents the shape of a card combination. The declaration order
// of the five-card shapes is also their strength order: a straight flush beats
// a full house of any rank.
type ComboType int

const (
	Invalid ComboType = iota
	Single
	Pair
	Triple
	Straight
	Flush
	FullHouse
	FourPlusOne
	StraightFlush
	RoyalFlush
)

func (t ComboType) String() string {
	switch t {
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Triple:
		return "triple"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourPlusOne:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	case RoyalFlush:
		return "royal flush"
	default:
		return "invalid"
	}
}

// Combination is a classified set of cards playable as one unit.
//
// Value is the comparison key among combinations of the same type: the peak
// card's power for singles, pairs, triples, straights and straight flushes,
// the suit then peak power for flushes, the triple's rank for full houses and
// the quad's rank for four of a kind.
type Combination struct {
	Type  ComboType
	Cards []Card // sorted ascending by power
	Value int
	Count int
}

// Empty reports whether the slot holds no combination (a cleared table).
func (c Combination) Empty() bool {
	return c.Type == Invalid
}

// IdentifyCombination classifies a set of cards. Only sets of 1, 2, 3 or 5
// cards can form a combination; anything else is Invalid. The input is not
// mutated and the result carries its own sorted copy of the cards.
func IdentifyCombination(cards []Card) Combination {
	switch len(cards) {
	case 1:
		c := sortedCopy(cards)
		return Combination{Type: Single, Cards: c, Value: CardPower(c[0]), Count: 1}
	case 2:
		c := sortedCopy(cards)
		if c[0].Rank != c[1].Rank {
			return Combination{Type: Invalid}
		}
		return Combination{Type: Pair, Cards: c, Value: CardPower(c[1]), Count: 2}
	case 3:
		c := sortedCopy(cards)
		if c[0].Rank != c[1].Rank || c[1].Rank != c[2].Rank {
			return Combination{Type: Invalid}
		}
		return Combination{Type: Triple, Cards: c, Value: CardPower(c[2]), Count: 3}
	case 5:
		return classifyFive(sortedCopy(cards))
	default:
		return Combination{Type: Invalid}
	}
}

// classifyFive expects exactly five cards sorted ascending by power.
// Precedence matters: royal flush before straight flush, and the kind counts
// before plain flush and straight.
func classifyFive(cards []Card) Combination {
	straight := isStraight(cards)
	flush := isFlush(cards)

	if flush && isRoyalRanks(cards) {
		return Combination{Type: RoyalFlush, Cards: cards, Value: CardPower(cards[4]), Count: 5}
	}
	if straight && flush {
		return Combination{Type: StraightFlush, Cards: cards, Value: CardPower(cards[4]), Count: 5}
	}

	counts := rankCounts(cards)
	if r, ok := rankWithCount(counts, 4); ok {
		return Combination{Type: FourPlusOne, Cards: cards, Value: int(r), Count: 5}
	}
	if r, ok := rankWithCount(counts, 3); ok {
		if _, pair := rankWithCount(counts, 2); pair {
			return Combination{Type: FullHouse, Cards: cards, Value: int(r), Count: 5}
		}
	}
	if flush {
		return Combination{Type: Flush, Cards: cards, Value: int(cards[0].Suit)*deckSize + CardPower(cards[4]), Count: 5}
	}
	if straight {
		return Combination{Type: Straight, Cards: cards, Value: CardPower(cards[4]), Count: 5}
	}
	return Combination{Type: Invalid}
}

// isStraight checks five sorted cards for consecutive ranks. Two is the
// highest rank, so a run can end at Two (J-Q-K-A-2) but never wrap past it.
func isStraight(cards []Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank != cards[i-1].Rank+1 {
			return false
		}
	}
	return true
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// isRoyalRanks checks sorted cards for exactly 10-J-Q-K-A.
func isRoyalRanks(cards []Card) bool {
	for i, r := range []Rank{Ten, Jack, Queen, King, Ace} {
		if cards[i].Rank != r {
			return false
		}
	}
	return true
}

func rankCounts(cards []Card) map[Rank]int {
	counts := make(map[Rank]int, len(cards))
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

func rankWithCount(counts map[Rank]int, n int) (Rank, bool) {
	for r, c := range counts {
		if c == n {
			return r, true
		}
	}
	return 0, false
}
