package domain

import (
	"fmt"
	"math/rand"
)

const (
	// NumPlayers is fixed: the rules assume exactly four seats.
	NumPlayers = 4
	// HandSize is the number of cards dealt to each seat.
	HandSize = 13
	deckSize = NumPlayers * HandSize
)

// NewDeck returns the 52 unique cards in sorted order.
func NewDeck() []Card {
	deck := make([]Card, 0, deckSize)
	for r := Three; r <= Two; r++ {
		for s := Clubs; s <= Spades; s++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck. The input is never
// mutated, and a seeded rng makes the permutation reproducible.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal splits a full deck into four sorted 13-card hands, dealing round-robin
// so card i lands in hand i mod 4.
func Deal(deck []Card) ([NumPlayers][]Card, error) {
	var hands [NumPlayers][]Card
	if len(deck) != deckSize {
		return hands, fmt.Errorf("deal requires a %d-card deck, got %d", deckSize, len(deck))
	}
	for i := range hands {
		hands[i] = make([]Card, 0, HandSize)
	}
	for i, c := range deck {
		hands[i%NumPlayers] = append(hands[i%NumPlayers], c)
	}
	for i := range hands {
		SortHand(hands[i])
	}
	return hands, nil
}
