package components

import (
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

// Bullet is a player projectile travelling straight up
type Bullet struct {
	X, Y float64
}

// Step moves the bullet up by its fixed speed
func (b *Bullet) Step() {
	b.Y -= constants.BulletSpeed
}

// Offscreen reports whether the bullet passed the top interior row
func (b Bullet) Offscreen() bool {
	return b.Y < 1
}

// Cell returns the floored grid position
func (b Bullet) Cell() core.Point {
	return core.Point{X: core.Trunc(b.X), Y: core.Trunc(b.Y)}
}
