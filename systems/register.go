package systems

import "github.com/lixenwraith/vi-invaders/engine"

// RegisterAll adds the per-tick systems to the game; registration order does not
// matter since the game sorts by priority
func RegisterAll(g *engine.Game) {
	g.AddSystem(NewBulletSystem())
	g.AddSystem(NewFormationSystem())
	g.AddSystem(NewCollisionSystem())
	g.AddSystem(NewOutcomeSystem())
}

// NewGame builds a game with all systems registered and the first round started
func NewGame(cfg engine.Config, timeProvider engine.TimeProvider) (*engine.Game, error) {
	g, err := engine.NewGame(cfg, timeProvider)
	if err != nil {
		return nil, err
	}
	RegisterAll(g)
	g.Reset()
	return g, nil
}
