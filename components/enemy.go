package components

import (
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

// Enemy is a single invader; heading is owned by the formation
type Enemy struct {
	X, Y  float64
	Width int
	Dir   Direction
}

// NewEnemy creates a right-heading enemy at the given position
func NewEnemy(x, y float64, width int) Enemy {
	return Enemy{X: x, Y: y, Width: width, Dir: DirRight}
}

// Step moves the enemy horizontally by one formation step
func (e *Enemy) Step() {
	e.X += float64(e.Dir) * constants.EnemySpeed
}

// TurnAndDrop reverses heading and descends one row
func (e *Enemy) TurnAndDrop() {
	e.Dir = e.Dir.Reverse()
	e.Y += 1.0
}

// Hitbox returns the floored collision box
func (e Enemy) Hitbox() core.Hitbox {
	return core.HitboxAt(e.X, e.Y, e.Width)
}

// TouchesWall reports whether the floored box reaches either side wall
func (e Enemy) TouchesWall(arenaWidth int) bool {
	x := core.Trunc(e.X)
	return x+e.Width >= arenaWidth-1 || x <= 0
}
