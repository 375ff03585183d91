package domain

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestShuffleDeckDeterministic(t *testing.T) {
	deck := NewDeck()

	a := ShuffleDeck(deck, rand.New(rand.NewSource(42)))
	b := ShuffleDeck(deck, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed should produce the same permutation")
	}

	c := ShuffleDeck(deck, rand.New(rand.NewSource(43)))
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical permutations")
	}

	// Input untouched, output a permutation of it.
	if !reflect.DeepEqual(deck, NewDeck()) {
		t.Fatal("ShuffleDeck mutated its input")
	}
	seen := make(map[Card]bool)
	for _, card := range a {
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Fatalf("shuffled deck has %d unique cards, want 52", len(seen))
	}
}

func TestDeal(t *testing.T) {
	deck := ShuffleDeck(NewDeck(), rand.New(rand.NewSource(7)))

	hands, err := Deal(deck)
	if err != nil {
		t.Fatalf("Deal() error: %v", err)
	}

	seen := make(map[Card]bool)
	for i, hand := range hands {
		if len(hand) != HandSize {
			t.Fatalf("hand %d has %d cards, want %d", i, len(hand), HandSize)
		}
		for j := 1; j < len(hand); j++ {
			if CardPower(hand[j-1]) >= CardPower(hand[j]) {
				t.Fatalf("hand %d is not sorted: %v", i, hand)
			}
		}
		for _, c := range hand {
			if seen[c] {
				t.Fatalf("card %v dealt twice", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != 52 {
		t.Fatalf("hands cover %d cards, want 52", len(seen))
	}
}

func TestDealRoundRobin(t *testing.T) {
	deck := NewDeck() // sorted, so assignment is predictable
	hands, err := Deal(deck)
	if err != nil {
		t.Fatalf("Deal() error: %v", err)
	}
	// Card i goes to hand i mod 4.
	for i, c := range deck {
		if !containsCard(hands[i%NumPlayers], c) {
			t.Fatalf("card %v missing from hand %d", c, i%NumPlayers)
		}
	}
}

func TestDealRejectsShortDeck(t *testing.T) {
	if _, err := Deal(NewDeck()[:51]); err == nil {
		t.Fatal("expected an error for a 51-card deck")
	}
}
