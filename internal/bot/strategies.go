package bot

import "bigtwo/internal/domain"

// peakPower is the power of a combination's highest card. Enumerated
// combinations keep their cards sorted ascending.
func peakPower(c domain.Combination) int {
	return domain.CardPower(c.Cards[len(c.Cards)-1])
}

// BasicBrain takes the first candidate in enumeration order.
type BasicBrain struct{}

func (BasicBrain) Name() string { return "Basic AI" }

func (BasicBrain) SelectPlay(plays []domain.Combination, _ []domain.Card, _ domain.Combination) domain.Combination {
	return plays[0]
}

// AggressiveBrain favors the candidate with the highest peak card.
type AggressiveBrain struct{}

func (AggressiveBrain) Name() string { return "Aggressive AI" }

func (AggressiveBrain) SelectPlay(plays []domain.Combination, _ []domain.Card, _ domain.Combination) domain.Combination {
	best := plays[0]
	for _, p := range plays[1:] {
		if peakPower(p) > peakPower(best) {
			best = p
		}
	}
	return best
}

// ConservativeBrain favors the candidate with the lowest peak card, saving
// high cards for later rounds.
type ConservativeBrain struct{}

func (ConservativeBrain) Name() string { return "Conservative AI" }

func (ConservativeBrain) SelectPlay(plays []domain.Combination, _ []domain.Card, _ domain.Combination) domain.Combination {
	best := plays[0]
	for _, p := range plays[1:] {
		if peakPower(p) < peakPower(best) {
			best = p
		}
	}
	return best
}

// ComboBrain favors the largest combination, shedding as many cards per turn
// as possible. Ties keep enumeration order.
type ComboBrain struct{}

func (ComboBrain) Name() string { return "Combo AI" }

func (ComboBrain) SelectPlay(plays []domain.Combination, _ []domain.Card, _ domain.Combination) domain.Combination {
	best := plays[0]
	for _, p := range plays[1:] {
		if p.Count > best.Count {
			best = p
		}
	}
	return best
}
