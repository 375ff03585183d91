package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/heroiclabs/nakama-common/runtime"

	"bigtwo/internal/bot"
	"bigtwo/internal/domain"
)

const (
	tickRate = 10
	// botThinkTicks spaces bot moves one second apart so humans can follow.
	botThinkTicks = 10
)

// botStyles assigns a strategy per auto-filled seat, mirroring the default
// single-player lineup.
var botStyles = [domain.NumPlayers]bot.Style{
	bot.StyleBasic,
	bot.StyleAggressive,
	bot.StyleConservative,
	bot.StyleCombo,
}

// BigTwoMatch implements Nakama's runtime.Match interface, driving the rules
// engine in internal/domain. All rule decisions live in the engine; this
// handler only shuttles messages and broadcasts results.
type BigTwoMatch struct{}

// MatchState holds authoritative state for one match instance.
type MatchState struct {
	Phase Phase

	Players map[string]*PlayerState // userId -> player
	Seats   [domain.NumPlayers]string

	OwnerUserID string

	Game        *domain.Game
	Brains      [domain.NumPlayers]bot.Brain // non-nil entries are bot seats
	NextBotTick int64
}

// MatchInit boots a new match in the lobby phase.
func (m *BigTwoMatch) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	state := &MatchState{
		Phase:   PhaseLobby,
		Players: map[string]*PlayerState{},
	}

	labelBytes, _ := json.Marshal(Label{Open: true, Game: "bigtwo", Phase: string(PhaseLobby)})
	return state, tickRate, string(labelBytes)
}

// MatchJoinAttempt validates whether a presence is allowed to join the match.
func (m *BigTwoMatch) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {

	s := state.(*MatchState)

	// Allow rejoin; disallow new joins once playing.
	if s.Phase != PhaseLobby {
		if _, ok := s.Players[presence.GetUserId()]; ok {
			return state, true, ""
		}
		return state, false, "match_in_progress"
	}

	if len(s.Players) >= domain.NumPlayers {
		return state, false, "match_full"
	}

	return state, true, ""
}

// MatchJoin mutates state when presences join and assigns seats/owner.
func (m *BigTwoMatch) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*MatchState)

	for _, p := range presences {
		uid := p.GetUserId()

		// Rejoin updates presence
		if existing, ok := s.Players[uid]; ok {
			existing.Presence = p
			continue
		}

		seat := lowestAvailableSeat(&s.Seats)
		s.Seats[seat] = uid

		isOwner := false
		if s.OwnerUserID == "" {
			s.OwnerUserID = uid
			isOwner = true
		}

		s.Players[uid] = &PlayerState{
			UserID:   uid,
			Presence: p,
			Seat:     seat,
			IsOwner:  isOwner,
		}

		evt, _ := json.Marshal(map[string]any{
			"user_id": uid,
			"seat":    seat,
			"owner":   isOwner,
		})
		_ = dispatcher.BroadcastMessage(OpPlayerJoined, evt, nil, nil, true)
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

// MatchLeave frees seats and reassigns the owner. A seat abandoned mid-game
// is handed to a bot so the remaining players can finish.
func (m *BigTwoMatch) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*MatchState)

	for _, p := range presences {
		uid := p.GetUserId()

		pl, ok := s.Players[uid]
		if !ok {
			continue
		}

		if s.Phase == PhasePlaying && s.Game != nil {
			s.Brains[pl.Seat] = bot.BasicBrain{}
			s.Game.Players[pl.Seat].Human = false
		}
		s.Seats[pl.Seat] = ""
		delete(s.Players, uid)

		evt, _ := json.Marshal(map[string]any{"user_id": uid, "seat": pl.Seat})
		_ = dispatcher.BroadcastMessage(OpPlayerLeft, evt, nil, nil, true)

		if s.OwnerUserID == uid && len(s.Players) > 0 {
			for other := range s.Players {
				s.OwnerUserID = other
				s.Players[other].IsOwner = true
				break
			}
		}
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

// MatchLoop processes in-match messages and drives bot turns.
func (m *BigTwoMatch) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {

	s := state.(*MatchState)

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			handleStartGame(logger, dispatcher, s, msg, tick)

		case OpPlayCards:
			handlePlayCards(logger, dispatcher, s, msg)

		case OpPassTurn:
			handlePass(logger, dispatcher, s, msg)

		case OpRequestNewGame:
			handleRequestNewGame(logger, dispatcher, s, msg)
		}
	}

	driveBots(logger, dispatcher, s, tick)

	return state
}

// MatchTerminate runs on match shutdown; no-op.
func (m *BigTwoMatch) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	return state
}

// MatchSignal handles out-of-band signals; unused.
func (m *BigTwoMatch) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

/* ---- helpers ---- */

func lowestAvailableSeat(seats *[domain.NumPlayers]string) int {
	for i := 0; i < len(seats); i++ {
		if seats[i] == "" {
			return i
		}
	}
	return 0
}

func buildLabel(s *MatchState) string {
	open := s.Phase == PhaseLobby && len(s.Players) < domain.NumPlayers
	b, _ := json.Marshal(Label{Open: open, Game: "bigtwo", Phase: string(s.Phase)})
	return string(b)
}

// rejectCode maps an engine rejection to the wire code clients switch on.
func rejectCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, domain.ErrCardsNotInHand):
		return "cards_not_in_hand"
	case errors.Is(err, domain.ErrIllegalShape):
		return "illegal_shape"
	case errors.Is(err, domain.ErrDoesNotBeatTable):
		return "does_not_beat_table"
	case errors.Is(err, domain.ErrMissingOpeningRequirement):
		return "missing_opening_requirement"
	case errors.Is(err, domain.ErrPassNotAllowed):
		return "pass_not_allowed"
	case errors.Is(err, domain.ErrGameFinished):
		return "game_finished"
	default:
		return "invalid_move"
	}
}

func reject(dispatcher runtime.MatchDispatcher, pl *PlayerState, code string) {
	evt, _ := json.Marshal(map[string]any{"code": code})
	_ = dispatcher.BroadcastMessage(OpMoveRejected, evt, []runtime.Presence{pl.Presence}, nil, true)
}

/* ---- message handlers ---- */

func handleStartGame(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, msg runtime.MatchData, tick int64) {
	if s.Phase != PhaseLobby {
		return
	}
	if msg.GetUserId() != s.OwnerUserID {
		return
	}
	if len(s.Players) == 0 {
		return
	}

	g := domain.NewGame(0)
	for seat := 0; seat < domain.NumPlayers; seat++ {
		if uid := s.Seats[seat]; uid != "" {
			pl := s.Players[uid]
			g.Players[seat].Name = pl.Presence.GetUsername()
			g.Players[seat].Human = true
			s.Brains[seat] = nil
			continue
		}
		// Empty seats are auto-filled with bots; the engine always runs four.
		brain, err := bot.NewBrain(botStyles[seat])
		if err != nil {
			logger.Error("bot brain for seat %d: %v", seat, err)
			brain = bot.BasicBrain{}
		}
		s.Brains[seat] = brain
		g.Players[seat].Name = brain.Name()
	}

	s.Game = g
	s.Phase = PhasePlaying
	s.NextBotTick = tick + botThinkTicks

	for _, pl := range s.Players {
		private, _ := json.Marshal(map[string]any{
			"seat": pl.Seat,
			"hand": toWire(g.Hand(pl.Seat)),
		})
		_ = dispatcher.BroadcastMessage(OpHandDealt, private, []runtime.Presence{pl.Presence}, nil, true)
	}

	evt, _ := json.Marshal(map[string]any{"turn_seat": g.CurrentSeat()})
	_ = dispatcher.BroadcastMessage(OpGameStarted, evt, nil, nil, true)
	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
}

func handlePlayCards(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, msg runtime.MatchData) {
	if s.Phase != PhasePlaying || s.Game == nil {
		return
	}
	pl := s.Players[msg.GetUserId()]
	if pl == nil {
		return
	}

	var payload struct {
		Cards []WireCard `json:"cards"`
	}
	if err := json.Unmarshal(msg.GetData(), &payload); err != nil {
		reject(dispatcher, pl, "bad_payload")
		return
	}
	cards, err := fromWire(payload.Cards)
	if err != nil || len(cards) == 0 {
		reject(dispatcher, pl, "bad_payload")
		return
	}

	if err := s.Game.ApplyMove(pl.Seat, cards); err != nil {
		reject(dispatcher, pl, rejectCode(err))
		return
	}

	broadcastMove(dispatcher, s, pl.Seat, cards, false)
}

func handlePass(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, msg runtime.MatchData) {
	if s.Phase != PhasePlaying || s.Game == nil {
		return
	}
	pl := s.Players[msg.GetUserId()]
	if pl == nil {
		return
	}

	if err := s.Game.ApplyMove(pl.Seat, nil); err != nil {
		reject(dispatcher, pl, rejectCode(err))
		return
	}

	broadcastMove(dispatcher, s, pl.Seat, nil, true)
}

func handleRequestNewGame(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, msg runtime.MatchData) {
	if s.Phase != PhaseEnded {
		return
	}
	if msg.GetUserId() != s.OwnerUserID {
		return
	}

	s.Game = nil
	s.Brains = [domain.NumPlayers]bot.Brain{}
	s.Phase = PhaseLobby

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
}

/* ---- game flow ---- */

// broadcastMove announces an accepted move along with the resulting turn and
// table state, then closes the match out if the game finished.
func broadcastMove(dispatcher runtime.MatchDispatcher, s *MatchState, seat int, cards []domain.Card, pass bool) {
	evt := map[string]any{
		"seat":        seat,
		"next_turn":   s.Game.CurrentSeat(),
		"table_empty": s.Game.Table().Empty(),
		"cards_left":  len(s.Game.Hand(seat)),
	}
	op := OpTurnPassed
	if !pass {
		op = OpCardPlayed
		evt["cards"] = toWire(cards)
	}
	data, _ := json.Marshal(evt)
	_ = dispatcher.BroadcastMessage(op, data, nil, nil, true)

	if s.Game.Finished() {
		endGame(dispatcher, s)
	}
}

func endGame(dispatcher runtime.MatchDispatcher, s *MatchState) {
	standings := s.Game.Standings()
	results := make([]map[string]any, 0, len(standings))
	for _, st := range standings {
		results = append(results, map[string]any{
			"seat": st.Seat,
			"rank": st.Rank,
			"name": s.Game.Players[st.Seat].Name,
		})
	}

	evt, _ := json.Marshal(map[string]any{"standings": results})
	_ = dispatcher.BroadcastMessage(OpGameEnded, evt, nil, nil, true)

	s.Phase = PhaseEnded
	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
}

// driveBots plays one bot move per loop once the think delay has elapsed.
func driveBots(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *MatchState, tick int64) {
	if s.Phase != PhasePlaying || s.Game == nil {
		return
	}
	seat := s.Game.CurrentSeat()
	brain := s.Brains[seat]
	if brain == nil {
		return // human's turn
	}
	if tick < s.NextBotTick {
		return
	}
	s.NextBotTick = tick + botThinkTicks

	plays := s.Game.LegalPlays()
	if len(plays) == 0 {
		if err := s.Game.ApplyMove(seat, nil); err != nil {
			logger.Error("bot pass at seat %d: %v", seat, err)
			return
		}
		broadcastMove(dispatcher, s, seat, nil, true)
		return
	}

	choice := brain.SelectPlay(plays, s.Game.Hand(seat), s.Game.Table())
	if err := s.Game.ApplyMove(seat, choice.Cards); err != nil {
		logger.Error("bot play at seat %d: %v", seat, err)
		return
	}
	broadcastMove(dispatcher, s, seat, choice.Cards, false)
}
