package systems

import (
	"time"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
)

// OutcomeSystem ends the round on a cleared formation, an enemy reaching the
// bottom wall, or an enemy touching the player
type OutcomeSystem struct{}

// NewOutcomeSystem creates a new outcome system
func NewOutcomeSystem() *OutcomeSystem {
	return &OutcomeSystem{}
}

// Priority returns the system's priority
func (s *OutcomeSystem) Priority() int {
	return constants.PriorityOutcome
}

// Update checks the win condition first; loss checks do not run on a winning tick
func (s *OutcomeSystem) Update(state *engine.GameState, now time.Time) {
	if len(state.Enemies) == 0 {
		state.End(engine.OutcomeWin)
		return
	}
	if outcome := CheckEnemyLoss(state.Enemies, state.Player, state.Config.ArenaHeight); outcome != engine.OutcomeNone {
		state.End(outcome)
	}
}

// CheckEnemyLoss walks the formation in order; for each enemy the bottom wall is
// tested before player overlap and the first offender decides the outcome
func CheckEnemyLoss(enemies []components.Enemy, player components.Player, arenaHeight int) engine.Outcome {
	playerBox := player.Hitbox()
	for _, e := range enemies {
		box := e.Hitbox()
		if ReachedBottom(box, arenaHeight) {
			return engine.OutcomeBottomWall
		}
		if box.Overlaps(playerBox) {
			return engine.OutcomePlayerHit
		}
	}
	return engine.OutcomeNone
}

// ReachedBottom reports whether the row below the box is the last interior row,
// the one directly above the bottom wall
func ReachedBottom(box core.Hitbox, arenaHeight int) bool {
	return box.Y+1 >= arenaHeight-2
}
