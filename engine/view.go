package engine

import "github.com/lixenwraith/vi-invaders/components"

// View is an immutable copy of the state handed to renderers
type View struct {
	Config     Config
	Phase      Phase
	Outcome    Outcome
	Score      int
	RoundTicks int

	Player  components.Player
	Enemies []components.Enemy
	Bullets []components.Bullet
}

// Snapshot copies the current state for rendering
func (s *GameState) Snapshot() View {
	v := View{
		Config:     s.Config,
		Phase:      s.Phase,
		Outcome:    s.Outcome,
		Score:      s.Score,
		RoundTicks: s.RoundTicks,
		Player:     s.Player,
		Enemies:    make([]components.Enemy, len(s.Enemies)),
		Bullets:    make([]components.Bullet, len(s.Bullets)),
	}
	copy(v.Enemies, s.Enemies)
	copy(v.Bullets, s.Bullets)
	return v
}
