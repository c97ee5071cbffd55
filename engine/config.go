package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-invaders/constants"
)

// Config holds arena geometry for a game
type Config struct {
	ArenaWidth  int
	ArenaHeight int
	EnemyRows   int
}

// DefaultConfig returns the standard 60x20 arena with three enemy rows
func DefaultConfig() Config {
	return Config{
		ArenaWidth:  constants.ArenaWidth,
		ArenaHeight: constants.ArenaHeight,
		EnemyRows:   constants.EnemyRows,
	}
}

// Validate checks that the arena can hold the player and its walls
func (c Config) Validate() error {
	if c.ArenaWidth < constants.PlayerWidth+2 {
		return fmt.Errorf("arena width %d too small for player of width %d", c.ArenaWidth, constants.PlayerWidth)
	}
	if c.ArenaHeight < 4 {
		return fmt.Errorf("arena height %d too small, need at least 4", c.ArenaHeight)
	}
	if c.EnemyRows < 0 {
		return fmt.Errorf("enemy rows must be non-negative, got %d", c.EnemyRows)
	}
	return nil
}
