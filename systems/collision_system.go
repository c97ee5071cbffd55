package systems

import (
	"time"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// CollisionSystem resolves bullet hits on the formation and awards points
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update removes every hit bullet and enemy and adds the points
func (s *CollisionSystem) Update(state *engine.GameState, now time.Time) {
	bullets, enemies, kills := ResolveBulletHits(state.Bullets, state.Enemies)
	state.Bullets = bullets
	state.Enemies = enemies
	state.AddScore(kills * constants.PointsPerEnemy)
}

// ResolveBulletHits scans each bullet against the formation on floored positions.
// A bullet kills at most the first enemy it overlaps; removal happens after the
// full scan so iteration never sees a mutated slice. Returns the surviving
// collections and the number of enemies destroyed
func ResolveBulletHits(bullets []components.Bullet, enemies []components.Enemy) ([]components.Bullet, []components.Enemy, int) {
	if len(bullets) == 0 || len(enemies) == 0 {
		return bullets, enemies, 0
	}

	deadBullets := make([]bool, len(bullets))
	deadEnemies := make([]bool, len(enemies))
	kills := 0

	for bi, b := range bullets {
		cell := b.Cell()
		for ei, e := range enemies {
			if !e.Hitbox().ContainsCell(cell.X, cell.Y) {
				continue
			}
			deadBullets[bi] = true
			// Points are per enemy destroyed, not per bullet spent
			if !deadEnemies[ei] {
				deadEnemies[ei] = true
				kills++
			}
			break
		}
	}

	if kills == 0 {
		return bullets, enemies, 0
	}

	keptBullets := bullets[:0]
	for i, b := range bullets {
		if !deadBullets[i] {
			keptBullets = append(keptBullets, b)
		}
	}
	keptEnemies := enemies[:0]
	for i, e := range enemies {
		if !deadEnemies[i] {
			keptEnemies = append(keptEnemies, e)
		}
	}
	return keptBullets, keptEnemies, kills
}
