package domain

import "errors"

// Move rejection errors. A rejected move leaves the game state untouched; the
// caller re-prompts and resubmits.
var (
	ErrNotYourTurn               = errors.New("not your turn")
	ErrCardsNotInHand            = errors.New("cards are not all in hand")
	ErrIllegalShape              = errors.New("cards do not form a playable combination")
	ErrDoesNotBeatTable          = errors.New("combination does not beat the table")
	ErrMissingOpeningRequirement = errors.New("opening play must include the three of clubs")
	ErrPassNotAllowed            = errors.New("cannot pass on an empty table")
	ErrGameFinished              = errors.New("game is already finished")
)
