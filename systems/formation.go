package systems

import (
	"time"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/engine"
)

// FormationSystem lays out the enemy grid and advances it as one unit
// on its own real-time cadence, independent of the loop tick
type FormationSystem struct {
	interval time.Duration
}

// NewFormationSystem creates a formation system with the standard cadence
func NewFormationSystem() *FormationSystem {
	return &FormationSystem{interval: constants.EnemyMoveInterval}
}

// Priority returns the system's priority
func (s *FormationSystem) Priority() int {
	return constants.PriorityFormation
}

// InitRound rebuilds the grid and restarts the cadence clock
func (s *FormationSystem) InitRound(state *engine.GameState, now time.Time) {
	state.Enemies = LayoutFormation(state.Config.ArenaWidth, constants.EnemyWidth, state.Config.EnemyRows)
	state.LastEnemyMove = now
}

// Update advances the formation once the cadence interval has strictly elapsed
func (s *FormationSystem) Update(state *engine.GameState, now time.Time) {
	if now.Sub(state.LastEnemyMove) <= s.interval {
		return
	}
	SweepFormation(state.Enemies, state.Config.ArenaWidth)
	state.LastEnemyMove = now
}

// LayoutFormation returns a left-aligned grid starting at interior column 1.
// Enemies that would cross the right wall are skipped
func LayoutFormation(arenaWidth, enemyWidth, rows int) []components.Enemy {
	spacing := enemyWidth + constants.EnemySpacingGap
	free := arenaWidth - 2 - enemyWidth

	perRow := free / spacing
	if perRow <= 0 {
		if free >= 0 {
			perRow = 1
		} else {
			perRow = 0
		}
	}

	enemies := make([]components.Enemy, 0, perRow*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < perRow; col++ {
			x := col*spacing + constants.EnemyStartColumn
			if x+enemyWidth > arenaWidth-1 {
				continue
			}
			enemies = append(enemies, components.NewEnemy(float64(x), float64(row+1), enemyWidth))
		}
	}
	return enemies
}

// SweepFormation moves every enemy one step along the shared heading, then
// checks for wall contact. If any enemy touches a side wall the whole
// formation reverses and drops one row. Returns true if the formation dropped
func SweepFormation(enemies []components.Enemy, arenaWidth int) bool {
	for i := range enemies {
		enemies[i].Step()
	}

	drop := false
	for _, e := range enemies {
		if e.TouchesWall(arenaWidth) {
			drop = true
			break
		}
	}

	if drop {
		for i := range enemies {
			enemies[i].TurnAndDrop()
		}
	}
	return drop
}
