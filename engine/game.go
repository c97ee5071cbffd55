package engine

import (
	"log"

	"github.com/lixenwraith/vi-invaders/components"
)

// Game drives a GameState through registered systems, one tick at a time
type Game struct {
	State *GameState

	timeProvider TimeProvider
	systems      []System
}

// NewGame creates a game; call Reset after registering systems to start the first round
func NewGame(cfg Config, timeProvider TimeProvider) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{
		State:        NewGameState(cfg),
		timeProvider: timeProvider,
	}, nil
}

// AddSystem registers a system, keeping the list sorted by priority
func (g *Game) AddSystem(system System) {
	g.systems = append(g.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(g.systems)-1; i++ {
		for j := 0; j < len(g.systems)-i-1; j++ {
			if g.systems[j].Priority() > g.systems[j+1].Priority() {
				g.systems[j], g.systems[j+1] = g.systems[j+1], g.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (g *Game) Systems() []System {
	result := make([]System, len(g.systems))
	copy(result, g.systems)
	return result
}

// Reset starts a new round: player, bullets, score and phase are restored and
// round initializers rebuild the formation and its cadence clock
func (g *Game) Reset() {
	now := g.timeProvider.Now()
	g.State.resetRound(now)
	for _, system := range g.systems {
		if ri, ok := system.(RoundInitializer); ok {
			ri.InitRound(g.State, now)
		}
	}
	log.Printf("round started: %d enemies", len(g.State.Enemies))
}

// Tick applies one input command and advances the simulation.
// Returns false when the loop must terminate
func (g *Game) Tick(cmd Command) bool {
	if cmd == CommandExit {
		return false
	}

	if g.State.IsOver() {
		switch cmd {
		case CommandReset:
			log.Printf("reset requested after %s, score %d", g.State.Outcome, g.State.Score)
			g.Reset()
		case CommandQuit:
			return false
		}
		return true
	}

	g.applyCommand(cmd)
	g.State.RoundTicks++

	now := g.timeProvider.Now()
	for _, system := range g.systems {
		system.Update(g.State, now)
		if g.State.IsOver() {
			log.Printf("round over: %s, score %d", g.State.Outcome, g.State.Score)
			break
		}
	}
	return true
}

// applyCommand handles in-round commands; reset and quit are ignored while playing
func (g *Game) applyCommand(cmd Command) {
	switch cmd {
	case CommandLeft:
		g.State.MovePlayer(components.DirLeft)
	case CommandRight:
		g.State.MovePlayer(components.DirRight)
	case CommandFire:
		g.State.Fire()
	}
}
