package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// SeatConfig names a seat and picks its play-selection style.
type SeatConfig struct {
	Name  string `json:"name"`
	Style string `json:"style"` // basic, aggressive, conservative, combo
}

type GameConfig struct {
	// Seed makes the shuffle reproducible; 0 or negative means random.
	Seed int64 `json:"seed"`
	// TurnDelayMs is the simulated thinking time between AI moves.
	TurnDelayMs int          `json:"turn_delay_ms"`
	Seats       []SeatConfig `json:"seats"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil if never loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetTurnDelay returns the configured thinking delay between AI moves.
func GetTurnDelay() time.Duration {
	if cfg == nil || cfg.TurnDelayMs < 0 {
		return time.Second // matches the delay players expect from an opponent
	}
	return time.Duration(cfg.TurnDelayMs) * time.Millisecond
}

// GetSeat returns the configuration for a seat index, falling back to an
// empty SeatConfig when unset.
func GetSeat(seat int) SeatConfig {
	if cfg == nil || seat < 0 || seat >= len(cfg.Seats) {
		return SeatConfig{}
	}
	return cfg.Seats[seat]
}
