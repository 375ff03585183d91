package domain

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
)

// Player holds the engine-side state for one seat.
type Player struct {
	Seat  int
	Name  string
	Hand  []Card
	Human bool
	Rank  int // 0 until the player finishes
}

// Game is the authoritative state for a single four-player game. All exported
// methods lock, so concurrent callers still see one move applied at a time;
// a move either commits atomically or is rejected with the state untouched.
type Game struct {
	mu sync.Mutex

	ID      string
	Players [NumPlayers]*Player

	table     Combination
	passed    map[int]bool
	anchor    int // seat of the last valid play, -1 before the opening play
	turn      int
	gameStart bool
	nextRank  int
}

// NewGame builds, shuffles and deals a fresh game. The seat holding the three
// of clubs moves first. A seed > 0 gives a reproducible deal; otherwise the
// clock seeds the shuffle.
func NewGame(seed int64) *Game {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	hands, err := Deal(ShuffleDeck(NewDeck(), rng))
	if err != nil {
		panic(err) // NewDeck always yields a full deck
	}

	g := &Game{
		ID:        uuid.NewV4().String(),
		passed:    make(map[int]bool),
		anchor:    -1,
		gameStart: true,
		nextRank:  1,
	}
	for i := range g.Players {
		g.Players[i] = &Player{
			Seat: i,
			Name: fmt.Sprintf("Player %d", i+1),
			Hand: hands[i],
		}
	}
	g.turn = g.openingSeat()
	return g
}

// openingSeat derives the first mover from the deal; it is never stored
// independently of the hands.
func (g *Game) openingSeat() int {
	for i, p := range g.Players {
		if containsCard(p.Hand, ThreeOfClubs) {
			return i
		}
	}
	panic("no seat holds the three of clubs")
}

// CurrentSeat returns the seat expected to move next.
func (g *Game) CurrentSeat() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}

// GameStart reports whether the opening play has not yet been made.
func (g *Game) GameStart() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gameStart
}

// Table returns the combination currently holding the table; Empty() is true
// after a clear or before the opening play.
func (g *Game) Table() Combination {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := g.table
	out.Cards = append([]Card(nil), g.table.Cards...)
	return out
}

// Hand returns a copy of the cards held at the given seat.
func (g *Game) Hand(seat int) []Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Card(nil), g.Players[seat].Hand...)
}

// AnchorSeat returns the seat whose play controls the table, or -1 before the
// opening play.
func (g *Game) AnchorSeat() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.anchor
}

// PassedSeats returns the seats that have passed since the table was last
// claimed, in seat order.
func (g *Game) PassedSeats() []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	seats := make([]int, 0, len(g.passed))
	for seat := range g.passed {
		seats = append(seats, seat)
	}
	sort.Ints(seats)
	return seats
}

// LegalPlays enumerates every combination the current mover can legally play.
// An empty result means the mover has to pass.
func (g *Game) LegalPlays() []Combination {
	g.mu.Lock()
	defer g.mu.Unlock()
	return LegalPlays(g.Players[g.turn].Hand, g.table, g.gameStart)
}

// IsLegalPlay reports whether ApplyMove would accept cards from the current
// mover, without mutating anything. Empty cards stand for a pass.
func (g *Game) IsLegalPlay(cards []Card) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.finishedLocked() {
		return false
	}
	if len(cards) == 0 {
		return !g.table.Empty()
	}
	_, err := g.validatePlay(g.turn, cards)
	return err == nil
}

// Finished reports whether every seat holds a finishing rank.
func (g *Game) Finished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finishedLocked()
}

func (g *Game) finishedLocked() bool {
	for _, p := range g.Players {
		if p.Rank == 0 {
			return false
		}
	}
	return true
}

// Standing pairs a seat with its finishing rank.
type Standing struct {
	Seat int
	Rank int
}

// Standings returns the seats that have finished, ordered by rank. Once
// Finished() is true the ranks are exactly 1 through 4.
func (g *Game) Standings() []Standing {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []Standing
	for _, p := range g.Players {
		if p.Rank > 0 {
			out = append(out, Standing{Seat: p.Seat, Rank: p.Rank})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}

// ApplyMove applies one move for the given seat: a played combination, or a
// pass when cards is empty. It is the sole mutator of game state. Rejected
// moves return one of the sentinel errors from errors.go with nothing changed.
func (g *Game) ApplyMove(seat int, cards []Card) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.finishedLocked() {
		return ErrGameFinished
	}
	if seat != g.turn {
		return ErrNotYourTurn
	}

	pass := len(cards) == 0
	if pass {
		// Covers game start too: the table is empty until the opening play.
		if g.table.Empty() {
			return ErrPassNotAllowed
		}
		g.passed[seat] = true
	} else {
		combo, err := g.validatePlay(seat, cards)
		if err != nil {
			return err
		}
		p := g.Players[seat]
		p.Hand = RemoveCards(p.Hand, combo.Cards)
		if len(p.Hand) == 0 {
			p.Rank = g.nextRank
			g.nextRank++
		}
		g.table = combo
		g.passed = make(map[int]bool)
		g.anchor = seat
		g.gameStart = false
	}

	// A finished player is implicitly no longer "passed"; prune on every
	// transition, not just at table-clear time.
	g.prunePassed()

	if g.completeIfThreeFinished() {
		return nil
	}

	g.advanceTurn(pass)
	return nil
}

func (g *Game) validatePlay(seat int, cards []Card) (Combination, error) {
	if !ContainsAll(g.Players[seat].Hand, cards) {
		return Combination{}, ErrCardsNotInHand
	}
	combo := IdentifyCombination(cards)
	if combo.Type == Invalid {
		return Combination{}, ErrIllegalShape
	}
	if !g.table.Empty() {
		if !beats(combo, g.table) {
			return Combination{}, ErrDoesNotBeatTable
		}
	} else if g.gameStart && !containsCard(combo.Cards, ThreeOfClubs) {
		return Combination{}, ErrMissingOpeningRequirement
	}
	return combo, nil
}

// isActive reports whether a seat still holds cards and no finishing rank.
func (g *Game) isActive(seat int) bool {
	p := g.Players[seat]
	return len(p.Hand) > 0 && p.Rank == 0
}

func (g *Game) activeCount() int {
	n := 0
	for seat := range g.Players {
		if g.isActive(seat) {
			n++
		}
	}
	return n
}

func (g *Game) prunePassed() {
	for seat := range g.passed {
		if !g.isActive(seat) {
			delete(g.passed, seat)
		}
	}
}

// completeIfThreeFinished assigns last place to the sole unranked player once
// the other three hold finishing ranks, ending the game without waiting for
// the final hand to empty.
func (g *Game) completeIfThreeFinished() bool {
	ranked := 0
	var last *Player
	for _, p := range g.Players {
		if p.Rank > 0 {
			ranked++
		} else {
			last = p
		}
	}
	if ranked == NumPlayers {
		return true
	}
	if ranked == NumPlayers-1 {
		last.Rank = g.nextRank
		g.nextRank++
		return true
	}
	return false
}

// nextActiveSeat finds the first active seat clockwise after from, wrapping
// around the table. This one scan primitive backs both table-clear handoff
// and anchor re-anchoring.
func (g *Game) nextActiveSeat(from int) (int, bool) {
	for i := 1; i <= NumPlayers; i++ {
		seat := (from + i) % NumPlayers
		if g.isActive(seat) {
			return seat, true
		}
	}
	return 0, false
}

// nextEligibleSeat is nextActiveSeat restricted to seats that have not passed.
func (g *Game) nextEligibleSeat(from int) (int, bool) {
	for i := 1; i <= NumPlayers; i++ {
		seat := (from + i) % NumPlayers
		if g.isActive(seat) && !g.passed[seat] {
			return seat, true
		}
	}
	return 0, false
}

// advanceTurn picks the next mover after a committed move.
func (g *Game) advanceTurn(pass bool) {
	// A pass never changes the anchor, but the anchor may have finished since
	// it last played; re-anchor clockwise so a later clear hands control to a
	// seat that can actually move.
	if pass && g.anchor >= 0 && !g.isActive(g.anchor) {
		if seat, ok := g.nextActiveSeat(g.anchor); ok {
			g.anchor = seat
		}
	}

	// Everyone except the anchor has passed: the round is over. The anchor
	// itself may sit in the passed set after re-anchoring, so count only the
	// other seats.
	passedOthers := 0
	for seat := range g.passed {
		if seat != g.anchor {
			passedOthers++
		}
	}
	if g.anchor >= 0 && passedOthers >= g.activeCount()-1 {
		g.clearTable()
		return
	}

	if seat, ok := g.nextEligibleSeat(g.turn); ok {
		g.turn = seat
		return
	}

	// Full loop without an eligible seat. The clearing condition above should
	// fire first in every reachable state; clear anyway rather than stall.
	g.clearTable()
}

// clearTable resets the in-play combination and the passed set, returning
// control to the anchor or, if the anchor has finished, to the next active
// seat clockwise from it.
func (g *Game) clearTable() {
	g.table = Combination{}
	g.passed = make(map[int]bool)
	if g.anchor >= 0 && g.isActive(g.anchor) {
		g.turn = g.anchor
		return
	}
	if seat, ok := g.nextActiveSeat(g.anchor); ok {
		g.turn = seat
	}
	// No active seat at all is unreachable: three finishers end the game
	// before any scan can come up empty.
}
