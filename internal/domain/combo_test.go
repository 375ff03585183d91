package domain

import (
	"math/rand"
	"testing"
)

func TestIdentifyCombination(t *testing.T) {
	tests := []struct {
		name     string
		cards    []Card
		expected ComboType
	}{
		{
			name:     "single",
			cards:    []Card{{Three, Clubs}},
			expected: Single,
		},
		{
			name:     "pair",
			cards:    []Card{{Nine, Clubs}, {Nine, Hearts}},
			expected: Pair,
		},
		{
			name:     "mismatched pair is invalid",
			cards:    []Card{{Nine, Clubs}, {Ten, Hearts}},
			expected: Invalid,
		},
		{
			name:     "triple",
			cards:    []Card{{Jack, Clubs}, {Jack, Diamonds}, {Jack, Spades}},
			expected: Triple,
		},
		{
			name:     "four cards never form a combination",
			cards:    []Card{{Jack, Clubs}, {Jack, Diamonds}, {Jack, Hearts}, {Jack, Spades}},
			expected: Invalid,
		},
		{
			name:     "straight",
			cards:    []Card{{Three, Clubs}, {Four, Hearts}, {Five, Spades}, {Six, Diamonds}, {Seven, Clubs}},
			expected: Straight,
		},
		{
			name:     "straight ending at two",
			cards:    []Card{{Jack, Clubs}, {Queen, Hearts}, {King, Spades}, {Ace, Diamonds}, {Two, Clubs}},
			expected: Straight,
		},
		{
			name:     "no wrap from two to three",
			cards:    []Card{{Ace, Clubs}, {Two, Hearts}, {Three, Spades}, {Four, Diamonds}, {Five, Clubs}},
			expected: Invalid,
		},
		{
			name:     "flush",
			cards:    []Card{{Three, Hearts}, {Six, Hearts}, {Nine, Hearts}, {Jack, Hearts}, {Ace, Hearts}},
			expected: Flush,
		},
		{
			name:     "full house",
			cards:    []Card{{Eight, Clubs}, {Eight, Hearts}, {Eight, Spades}, {King, Clubs}, {King, Diamonds}},
			expected: FullHouse,
		},
		{
			name:     "three of a kind with kickers is invalid",
			cards:    []Card{{Eight, Clubs}, {Eight, Hearts}, {Eight, Spades}, {King, Clubs}, {Ace, Diamonds}},
			expected: Invalid,
		},
		{
			name:     "four of a kind plus one",
			cards:    []Card{{Nine, Clubs}, {Nine, Diamonds}, {Nine, Hearts}, {Nine, Spades}, {Three, Clubs}},
			expected: FourPlusOne,
		},
		{
			name:     "straight flush",
			cards:    []Card{{Four, Spades}, {Five, Spades}, {Six, Spades}, {Seven, Spades}, {Eight, Spades}},
			expected: StraightFlush,
		},
		{
			name:     "royal flush",
			cards:    []Card{{Ten, Hearts}, {Jack, Hearts}, {Queen, Hearts}, {King, Hearts}, {Ace, Hearts}},
			expected: RoyalFlush,
		},
		{
			name:     "ten to ace off-suit is only a straight",
			cards:    []Card{{Ten, Hearts}, {Jack, Clubs}, {Queen, Hearts}, {King, Hearts}, {Ace, Hearts}},
			expected: Straight,
		},
		{
			name:     "two pair is invalid",
			cards:    []Card{{Eight, Clubs}, {Eight, Hearts}, {King, Spades}, {King, Clubs}, {Ace, Diamonds}},
			expected: Invalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo := IdentifyCombination(tt.cards)
			if combo.Type != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, combo.Type)
			}
		})
	}
}

// Classification must not depend on the order cards are handed over.
func TestIdentifyCombinationOrderInvariant(t *testing.T) {
	cards := []Card{{Eight, Clubs}, {Eight, Hearts}, {Eight, Spades}, {King, Clubs}, {King, Diamonds}}
	want := IdentifyCombination(cards).Type

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]Card, len(cards))
		copy(shuffled, cards)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		if got := IdentifyCombination(shuffled).Type; got != want {
			t.Fatalf("order %v classified as %v, want %v", shuffled, got, want)
		}
	}
}

// Every five-card draw classifies to exactly one outcome and never panics.
func TestClassifyFiveIsTotal(t *testing.T) {
	deck := NewDeck()
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 2000; i++ {
		sample := ShuffleDeck(deck, rng)[:5]
		combo := IdentifyCombination(sample)
		switch combo.Type {
		case Invalid, Straight, Flush, FullHouse, FourPlusOne, StraightFlush, RoyalFlush:
		default:
			t.Fatalf("five cards %v classified as %v", sample, combo.Type)
		}
	}
}
