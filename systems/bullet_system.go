package systems

import (
	"time"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// BulletSystem moves bullets up and drops those past the top interior row
type BulletSystem struct{}

// NewBulletSystem creates a new bullet system
func NewBulletSystem() *BulletSystem {
	return &BulletSystem{}
}

// Priority returns the system's priority
func (s *BulletSystem) Priority() int {
	return constants.PriorityBullets
}

// Update steps every bullet and filters offscreen ones in place.
// A bullet is gone on the same tick its row falls below 1
func (s *BulletSystem) Update(state *engine.GameState, now time.Time) {
	kept := state.Bullets[:0]
	for _, b := range state.Bullets {
		b.Step()
		if b.Offscreen() {
			continue
		}
		kept = append(kept, b)
	}
	state.Bullets = kept
}
