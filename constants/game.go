package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the fixed period of the input-update-render loop
	TickInterval = 100 * time.Millisecond

	// EnemyMoveInterval gates formation advancement; measured in real time, independent of TickInterval
	EnemyMoveInterval = 500 * time.Millisecond
)

// Arena Constants
const (
	// ArenaWidth is the arena width in cells, including both side walls
	ArenaWidth = 60

	// ArenaHeight is the arena height in cells, including top and bottom walls
	ArenaHeight = 20

	// EnemyRows is the number of formation rows created at setup
	EnemyRows = 3
)
