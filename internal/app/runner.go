package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"bigtwo/internal/bot"
	"bigtwo/internal/domain"
)

// maxMoves caps a single game as a defense against a stalled turn loop. Four
// 13-card hands never need anywhere near this many transitions.
const maxMoves = 500

// Runner drives one game from deal to standings, asking each seat's brain to
// choose among the legal plays and applying the result. The engine never
// calls a strategy itself; this orchestration layer does.
type Runner struct {
	game   *domain.Game
	brains [domain.NumPlayers]bot.Brain
	logger *log.Logger
	clock  quartz.Clock
	delay  time.Duration
}

// NewRunner wires a runner for the given game. Nil brains fall back to the
// basic strategy, a nil clock to the real one.
func NewRunner(game *domain.Game, brains [domain.NumPlayers]bot.Brain, logger *log.Logger, clock quartz.Clock, delay time.Duration) *Runner {
	if clock == nil {
		clock = quartz.NewReal()
	}
	for i := range brains {
		if brains[i] == nil {
			brains[i] = bot.BasicBrain{}
		}
	}
	return &Runner{
		game:   game,
		brains: brains,
		logger: logger,
		clock:  clock,
		delay:  delay,
	}
}

// Run plays the game to completion and returns the final standings.
func (r *Runner) Run(ctx context.Context) ([]domain.Standing, error) {
	for moves := 0; !r.game.Finished(); moves++ {
		if moves >= maxMoves {
			return nil, fmt.Errorf("game %s exceeded %d moves without finishing", r.game.ID, maxMoves)
		}
		if err := r.think(ctx); err != nil {
			return nil, err
		}

		seat := r.game.CurrentSeat()
		plays := r.game.LegalPlays()
		if len(plays) == 0 {
			if err := r.game.ApplyMove(seat, nil); err != nil {
				return nil, fmt.Errorf("seat %d pass: %w", seat, err)
			}
			r.logger.Info("pass", "game", r.game.ID, "seat", seat)
			continue
		}

		choice := r.brains[seat].SelectPlay(plays, r.game.Hand(seat), r.game.Table())
		if err := r.game.ApplyMove(seat, choice.Cards); err != nil {
			return nil, fmt.Errorf("seat %d play %v: %w", seat, choice.Cards, err)
		}
		r.logger.Info("play",
			"game", r.game.ID,
			"seat", seat,
			"combo", choice.Type.String(),
			"cards", fmt.Sprint(choice.Cards),
			"left", len(r.game.Hand(seat)))
	}
	return r.game.Standings(), nil
}

// think waits out the configured delay on the runner's clock, so tests drive
// it with a mock and real games look like an opponent deliberating.
func (r *Runner) think(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}
	fired := make(chan struct{})
	timer := r.clock.AfterFunc(r.delay, func() {
		close(fired)
	})
	defer timer.Stop()

	select {
	case <-fired:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
