package components

import (
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
)

// Player is the ship at the bottom of the arena
type Player struct {
	X, Y  float64 // Continuous position of the leftmost glyph cell
	Width int     // Glyph span in cells
}

// NewPlayer places the player centered above the bottom wall
func NewPlayer(arenaWidth, arenaHeight int) Player {
	return Player{
		X:     float64((arenaWidth - constants.PlayerWidth) / 2),
		Y:     float64(arenaHeight - 2),
		Width: constants.PlayerWidth,
	}
}

// Move shifts the player horizontally and clamps it between the side walls
func (p *Player) Move(dir Direction, arenaWidth int) {
	p.X += float64(dir) * constants.PlayerSpeed
	if p.X < 1 {
		p.X = 1
	}
	if p.X+float64(p.Width) > float64(arenaWidth-1) {
		p.X = float64(arenaWidth - 1 - p.Width)
	}
}

// Center returns the continuous horizontal center used as bullet spawn column
func (p Player) Center() float64 {
	return p.X + float64(p.Width)/2.0
}

// Hitbox returns the floored collision box
func (p Player) Hitbox() core.Hitbox {
	return core.HitboxAt(p.X, p.Y, p.Width)
}
