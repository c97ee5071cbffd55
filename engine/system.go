package engine

import "time"

// System is a per-tick update step; systems run in ascending priority order
type System interface {
	Priority() int
	Update(state *GameState, now time.Time)
}

// RoundInitializer is implemented by systems that populate state when a round starts
type RoundInitializer interface {
	InitRound(state *GameState, now time.Time)
}
