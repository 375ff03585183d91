package bot

import (
	"fmt"
	"strings"
)

// Style selects a play-selection strategy.
type Style int

const (
	StyleBasic Style = iota
	StyleAggressive
	StyleConservative
	StyleCombo
)

// NewBrain creates a strategy for the specified style.
func NewBrain(style Style) (Brain, error) {
	switch style {
	case StyleBasic:
		return BasicBrain{}, nil
	case StyleAggressive:
		return AggressiveBrain{}, nil
	case StyleConservative:
		return ConservativeBrain{}, nil
	case StyleCombo:
		return ComboBrain{}, nil
	default:
		return nil, fmt.Errorf("unknown bot style: %d", style)
	}
}

// ParseStyle maps a config or CLI name to a Style. The empty string means
// basic.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "basic":
		return StyleBasic, nil
	case "aggressive":
		return StyleAggressive, nil
	case "conservative":
		return StyleConservative, nil
	case "combo":
		return StyleCombo, nil
	default:
		return 0, fmt.Errorf("unknown bot style: %q", name)
	}
}
