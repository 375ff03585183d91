package bot

import "bigtwo/internal/domain"

// Brain is the contract every play-selection strategy implements.
//
// SelectPlay picks one element of plays, which is never empty: a mover with no
// legal play passes without consulting a strategy. Strategies are advisory and
// pure; they must not mutate plays, hand or the game state they derive from.
type Brain interface {
	Name() string
	SelectPlay(plays []domain.Combination, hand []domain.Card, table domain.Combination) domain.Combination
}
