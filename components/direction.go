package components

import "github.com/lixenwraith/vi-invaders/constants"

// Direction is a horizontal heading, -1 (left) or +1 (right)
type Direction int

const (
	DirLeft  Direction = constants.Left
	DirRight Direction = constants.Right
)

// Reverse returns the opposite heading
func (d Direction) Reverse() Direction {
	return -d
}

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}
