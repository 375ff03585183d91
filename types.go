package main

import (
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"bigtwo/internal/domain"
)

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseLobby is the pre-game state where players can join.
	PhaseLobby Phase = "lobby"
	// PhasePlaying is the active game state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a game concludes.
	PhaseEnded Phase = "ended"
)

// WireCard is the JSON form of a card exchanged with clients.
type WireCard struct {
	Suit string `json:"suit"` // "C","D","H","S"
	Rank int    `json:"rank"` // 0..12 (3=0, 2=12)
}

var suitLetters = map[domain.Suit]string{
	domain.Clubs:    "C",
	domain.Diamonds: "D",
	domain.Hearts:   "H",
	domain.Spades:   "S",
}

var letterSuits = map[string]domain.Suit{
	"C": domain.Clubs,
	"D": domain.Diamonds,
	"H": domain.Hearts,
	"S": domain.Spades,
}

func toWire(cards []domain.Card) []WireCard {
	out := make([]WireCard, len(cards))
	for i, c := range cards {
		out[i] = WireCard{Suit: suitLetters[c.Suit], Rank: int(c.Rank)}
	}
	return out
}

func fromWire(cards []WireCard) ([]domain.Card, error) {
	out := make([]domain.Card, len(cards))
	for i, wc := range cards {
		suit, ok := letterSuits[wc.Suit]
		if !ok {
			return nil, fmt.Errorf("unknown suit %q", wc.Suit)
		}
		if wc.Rank < int(domain.Three) || wc.Rank > int(domain.Two) {
			return nil, fmt.Errorf("rank %d out of range", wc.Rank)
		}
		out[i] = domain.Card{Suit: suit, Rank: domain.Rank(wc.Rank)}
	}
	return out, nil
}

// PlayerState tracks server-side state for a participant in the match.
type PlayerState struct {
	UserID   string
	Presence runtime.Presence
	Seat     int // 0-based, matches engine seats
	IsOwner  bool
}

// Label is the match label advertised for quick-match queries.
type Label struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}
