package engine

import (
	"time"

	"github.com/lixenwraith/vi-invaders/components"
	"github.com/lixenwraith/vi-invaders/constants"
)

// Phase is the round lifecycle state
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome records why a round ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeBottomWall
	OutcomePlayerHit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWin:
		return "win"
	case OutcomeBottomWall:
		return "bottom wall"
	case OutcomePlayerHit:
		return "player hit"
	default:
		return "unknown"
	}
}

// GameState owns every mutable entity of a round.
// It is touched only from the tick goroutine; no locking
type GameState struct {
	Config Config

	Phase   Phase
	Outcome Outcome
	Score   int

	Player  components.Player
	Enemies []components.Enemy // Formation, insertion order only for deterministic iteration
	Bullets []components.Bullet

	// LastEnemyMove is the formation cadence reference point
	LastEnemyMove time.Time

	// RoundTicks counts ticks since the round started
	RoundTicks int
}

// NewGameState creates an empty state; Game.Reset populates it
func NewGameState(cfg Config) *GameState {
	s := &GameState{Config: cfg}
	s.resetRound(time.Time{})
	return s
}

// resetRound restores per-round fields; the formation is rebuilt by round initializers
func (s *GameState) resetRound(now time.Time) {
	s.Phase = PhasePlaying
	s.Outcome = OutcomeNone
	s.Score = 0
	s.Player = components.NewPlayer(s.Config.ArenaWidth, s.Config.ArenaHeight)
	s.Enemies = s.Enemies[:0]
	s.Bullets = s.Bullets[:0]
	s.LastEnemyMove = now
	s.RoundTicks = 0
}

// MovePlayer shifts the player one step with wall clamping
func (s *GameState) MovePlayer(dir components.Direction) {
	s.Player.Move(dir, s.Config.ArenaWidth)
}

// Fire spawns a bullet above the player's center.
// Returns false when the round is over or the bullet cap is reached
func (s *GameState) Fire() bool {
	if s.Phase != PhasePlaying || len(s.Bullets) >= constants.MaxBullets {
		return false
	}
	s.Bullets = append(s.Bullets, components.Bullet{
		X: s.Player.Center(),
		Y: s.Player.Y - 1.0,
	})
	return true
}

// AddScore awards points; negative values are ignored to keep score monotonic
func (s *GameState) AddScore(points int) {
	if points > 0 {
		s.Score += points
	}
}

// End transitions Playing to Over; a round that is already over keeps its first outcome
func (s *GameState) End(outcome Outcome) {
	if s.Phase == PhaseOver {
		return
	}
	s.Phase = PhaseOver
	s.Outcome = outcome
}

// IsOver reports whether the round has ended
func (s *GameState) IsOver() bool {
	return s.Phase == PhaseOver
}
