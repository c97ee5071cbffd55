package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-invaders/engine"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestGame creates a standard 60x20 game on a mock clock
func newTestGame(t *testing.T) (*engine.Game, *engine.MockTimeProvider) {
	t.Helper()
	clock := engine.NewMockTimeProvider(testStart)
	g, err := NewGame(engine.DefaultConfig(), clock)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return g, clock
}

// assertUniformDirection fails if the formation carries mixed headings
func assertUniformDirection(t *testing.T, state *engine.GameState) {
	t.Helper()
	if len(state.Enemies) == 0 {
		return
	}
	dir := state.Enemies[0].Dir
	for i, e := range state.Enemies {
		if e.Dir != dir {
			t.Fatalf("Enemy %d heading %v, formation heading %v", i, e.Dir, dir)
		}
	}
}
